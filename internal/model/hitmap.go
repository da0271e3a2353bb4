// Package model defines the geometric value types shared by the solver and
// the exporters: coordinates, rotations, occupancy masks and cages.
package model

import (
	"fmt"
	"math/bits"
)

// Hitmap is a 27-bit occupancy mask over the cells of the 3x3x3 cube.
// Bit i is set when the cell with index i is occupied; only bits 0-26 are
// ever used. The integer value doubles as a total order for canonical
// tie-breaking, it carries no geometric meaning.
type Hitmap uint32

// CellIndex maps a coordinate in {-1,0,1}^3 onto its bit index in [0,27).
// The mapping is a fixed bijection. A component outside {-1,0,1} is a
// contract violation and panics: it means a rotation or translation
// produced a cell outside the cube.
func CellIndex(c Coordinate) int {
	if c.X < -1 || c.X > 1 || c.Y < -1 || c.Y > 1 || c.Z < -1 || c.Z > 1 {
		panic(fmt.Sprintf("coordinate %v outside the 3x3x3 cube", c))
	}
	return (c.X + 1) + 3*(c.Y+1) + 9*(c.Z+1)
}

// HitmapOf builds a mask from the given coordinates.
func HitmapOf(coords ...Coordinate) Hitmap {
	var h Hitmap
	for _, c := range coords {
		h = h.With(c)
	}
	return h
}

// With returns the mask with the cell at c set.
func (h Hitmap) With(c Coordinate) Hitmap {
	return h | 1<<CellIndex(c)
}

// Has reports whether the cell at c is occupied.
func (h Hitmap) Has(c Coordinate) bool {
	return h&(1<<CellIndex(c)) != 0
}

// Union returns the combined occupancy of both masks.
func (h Hitmap) Union(o Hitmap) Hitmap {
	return h | o
}

// Overlaps reports whether the two masks share at least one occupied cell.
func (h Hitmap) Overlaps(o Hitmap) bool {
	return h&o != 0
}

// Count returns the number of occupied cells.
func (h Hitmap) Count() int {
	return bits.OnesCount32(uint32(h))
}

// Coordinates decodes the mask into its occupied cells, ordered by
// ascending x, then y, then z.
func (h Hitmap) Coordinates() []Coordinate {
	var coords []Coordinate
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				c := Coordinate{X: x, Y: y, Z: z}
				if h.Has(c) {
					coords = append(coords, c)
				}
			}
		}
	}
	return coords
}

// Rotate returns the mask with every occupied cell rotated by r.
func (h Hitmap) Rotate(r Rotation) Hitmap {
	var out Hitmap
	for _, c := range h.Coordinates() {
		out = out.With(r.Apply(c))
	}
	return out
}

// Shift returns the mask with every occupied cell translated by d.
// Shifting a cell outside the cube panics; the shapes used by the solver
// only ever shift within bounds.
func (h Hitmap) Shift(d Coordinate) Hitmap {
	var out Hitmap
	for _, c := range h.Coordinates() {
		out = out.With(c.Translate(d))
	}
	return out
}
