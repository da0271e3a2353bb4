package model

import (
	"fmt"
	"sort"
	"sync"
)

// Coordinate is one cell of the 3x3x3 cube, centered at the origin.
// Each component is -1, 0 or 1.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Translate returns the coordinate shifted component-wise by d.
func (c Coordinate) Translate(d Coordinate) Coordinate {
	return Coordinate{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Rotation is a 3x3 integer matrix, one element of the cube's proper
// rotation group. Entries are row-major: m[row][col].
type Rotation [3][3]int

// Mult returns the matrix product r*o.
func (r Rotation) Mult(o Rotation) Rotation {
	var p Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			p[i][j] = r[i][0]*o[0][j] + r[i][1]*o[1][j] + r[i][2]*o[2][j]
		}
	}
	return p
}

// Apply rotates the coordinate by the matrix-vector product r*c.
// The matrices are orthonormal integer matrices, so the arithmetic is exact.
func (r Rotation) Apply(c Coordinate) Coordinate {
	return Coordinate{
		X: r[0][0]*c.X + r[0][1]*c.Y + r[0][2]*c.Z,
		Y: r[1][0]*c.X + r[1][1]*c.Y + r[1][2]*c.Z,
		Z: r[2][0]*c.X + r[2][1]*c.Y + r[2][2]*c.Z,
	}
}

// Transposed returns the transpose of r. For a rotation matrix this is
// its inverse.
func (r Rotation) Transposed() Rotation {
	var t Rotation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = r[j][i]
		}
	}
	return t
}

// Identity is the identity rotation.
var Identity = Rotation{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// RotX90 rotates 90 degrees about the x-axis.
var RotX90 = Rotation{
	{1, 0, 0},
	{0, 0, -1},
	{0, 1, 0},
}

// RotY90 rotates 90 degrees about the y-axis.
var RotY90 = Rotation{
	{0, 0, 1},
	{0, 1, 0},
	{-1, 0, 0},
}

// RotZ90 rotates 90 degrees about the z-axis.
var RotZ90 = Rotation{
	{0, -1, 0},
	{1, 0, 0},
	{0, 0, 1},
}

var (
	rotationsOnce sync.Once
	allRotations  []Rotation
)

// AllRotations returns the cube's 24 proper rotations. The set is computed
// once on first use and shared read-only thereafter; callers must not
// modify the returned slice.
func AllRotations() []Rotation {
	rotationsOnce.Do(func() {
		allRotations = generateRotations()
	})
	return allRotations
}

// generateRotations composes the three axis rotations in nested loops.
// The 64 combinations collapse to the 24 distinct elements of the group.
func generateRotations() []Rotation {
	seen := make(map[Rotation]struct{})

	x := Identity
	for i := 0; i < 4; i++ {
		x = x.Mult(RotX90)
		y := Identity
		for j := 0; j < 4; j++ {
			y = y.Mult(RotY90)
			z := Identity
			for k := 0; k < 4; k++ {
				z = z.Mult(RotZ90)
				seen[x.Mult(y).Mult(z)] = struct{}{}
			}
		}
	}

	rotations := make([]Rotation, 0, len(seen))
	for r := range seen {
		rotations = append(rotations, r)
	}
	// Fixed iteration order keeps the program deterministic end to end.
	sort.Slice(rotations, func(a, b int) bool {
		return rotationLess(rotations[a], rotations[b])
	})
	return rotations
}

func rotationLess(a, b Rotation) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if a[i][j] != b[i][j] {
				return a[i][j] < b[i][j]
			}
		}
	}
	return false
}
