package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allCells returns the 27 coordinates of the cube.
func allCells() []Coordinate {
	var cells []Coordinate
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				cells = append(cells, Coordinate{X: x, Y: y, Z: z})
			}
		}
	}
	return cells
}

func TestCellIndex_IsBijectionOnto27(t *testing.T) {
	seen := make(map[int]Coordinate)
	for _, c := range allCells() {
		idx := CellIndex(c)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 27)
		_, dup := seen[idx]
		require.False(t, dup, "index %d assigned to both %v and %v", idx, seen[idx], c)
		seen[idx] = c
	}
	assert.Len(t, seen, 27)
}

func TestCellIndex_RoundTripsThroughHitmap(t *testing.T) {
	for _, c := range allCells() {
		h := HitmapOf(c)
		coords := h.Coordinates()
		require.Len(t, coords, 1)
		assert.Equal(t, c, coords[0])
	}
}

func TestCellIndex_PanicsOutsideDomain(t *testing.T) {
	for _, c := range []Coordinate{
		{X: 2}, {X: -2}, {Y: 2}, {Y: -2}, {Z: 2}, {Z: -2},
	} {
		assert.Panics(t, func() { CellIndex(c) }, "coordinate %v should violate the contract", c)
	}
}

func TestHitmap_UnionAndOverlap(t *testing.T) {
	a := HitmapOf(Coordinate{X: -1, Y: -1, Z: -1})
	b := HitmapOf(Coordinate{X: 1, Y: 1, Z: 1})

	assert.False(t, a.Overlaps(b))
	combined := a.Union(b)
	assert.Equal(t, 2, combined.Count())
	assert.True(t, combined.Overlaps(a))
	assert.True(t, combined.Overlaps(b))
}

func TestHitmap_RotateByIdentityIsNoOp(t *testing.T) {
	h := HitmapOf(
		Coordinate{X: -1, Y: -1, Z: -1},
		Coordinate{X: 0, Y: -1, Z: -1},
		Coordinate{X: 1, Y: 0, Z: 1},
	)
	assert.Equal(t, h, h.Rotate(Identity))
}

func TestHitmap_RotateThenInverseRestores(t *testing.T) {
	h := HitmapOf(
		Coordinate{X: -1, Y: -1, Z: -1},
		Coordinate{X: 0, Y: -1, Z: -1},
		Coordinate{X: 1, Y: 1, Z: 0},
	)
	for _, r := range AllRotations() {
		restored := h.Rotate(r).Rotate(r.Transposed())
		assert.Equal(t, h, restored, "rotation %v followed by its inverse should restore the mask", r)
	}
}

func TestHitmap_RotatePreservesCellCount(t *testing.T) {
	h := HitmapOf(
		Coordinate{X: -1, Y: 0, Z: 0},
		Coordinate{X: 0, Y: 0, Z: 0},
		Coordinate{X: 1, Y: 0, Z: 0},
	)
	for _, r := range AllRotations() {
		assert.Equal(t, 3, h.Rotate(r).Count())
	}
}

func TestHitmap_Shift(t *testing.T) {
	h := HitmapOf(Coordinate{X: -1, Y: 0, Z: 0})
	shifted := h.Shift(Coordinate{X: 1})
	assert.True(t, shifted.Has(Coordinate{X: 0, Y: 0, Z: 0}))
	assert.False(t, shifted.Has(Coordinate{X: -1, Y: 0, Z: 0}))
}

func TestHitmap_ShiftOutOfBoundsPanics(t *testing.T) {
	h := HitmapOf(Coordinate{X: 1, Y: 0, Z: 0})
	assert.Panics(t, func() { h.Shift(Coordinate{X: 1}) })
}

func TestHitmap_CoordinatesAreOrdered(t *testing.T) {
	h := HitmapOf(
		Coordinate{X: 1, Y: 1, Z: 1},
		Coordinate{X: -1, Y: -1, Z: -1},
		Coordinate{X: 0, Y: 1, Z: -1},
	)
	coords := h.Coordinates()
	require.Len(t, coords, 3)
	assert.Equal(t, Coordinate{X: -1, Y: -1, Z: -1}, coords[0])
	assert.Equal(t, Coordinate{X: 0, Y: 1, Z: -1}, coords[1])
	assert.Equal(t, Coordinate{X: 1, Y: 1, Z: 1}, coords[2])
}

func TestShapeBuilder_MarksStartMovesAndResets(t *testing.T) {
	start := Coordinate{X: -1, Y: -1, Z: -1}
	h := NewShapeBuilder(start).
		Move(Coordinate{X: 1}).
		Reset(start).
		Move(Coordinate{Y: 1}).
		Build()

	assert.Equal(t, 3, h.Count())
	assert.True(t, h.Has(start))
	assert.True(t, h.Has(Coordinate{X: 0, Y: -1, Z: -1}))
	assert.True(t, h.Has(Coordinate{X: -1, Y: 0, Z: -1}))
}
