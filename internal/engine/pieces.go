// Package engine enumerates maximal packings of rigid polycube pieces into
// the 3x3x3 cube. It expands the two base shapes into their rotated
// candidates and drives a backtracking search over non-overlapping
// placements.
package engine

import (
	"sort"

	"github.com/cagepack/cagepack/internal/model"
)

var (
	unitX = model.Coordinate{X: 1}
	unitY = model.Coordinate{Y: 1}
	unitZ = model.Coordinate{Z: 1}

	startCorner = model.Coordinate{X: -1, Y: -1, Z: -1}
)

// BasePieces returns the two 7-cell base shapes. Both are built from the
// (-1,-1,-1) corner; the second is the first shifted one step along z,
// the only translation that keeps it inside the cube.
func BasePieces() (model.Hitmap, model.Hitmap) {
	first := model.NewShapeBuilder(startCorner).
		Move(unitX).
		Move(unitX).
		Move(unitZ).
		Reset(startCorner).
		Move(unitZ).
		Reset(startCorner).
		Move(unitY).
		Move(unitY).
		Build()

	return first, first.Shift(unitZ)
}

// CandidatePieces returns every distinct orientation of both base pieces
// under the 24 cube rotations, sorted by mask value. The map dedups
// orientations that coincide; the base shapes have no rotational
// symmetry, so all 48 are distinct.
func CandidatePieces() []model.Hitmap {
	first, second := BasePieces()

	seen := make(map[model.Hitmap]struct{})
	for _, r := range model.AllRotations() {
		seen[first.Rotate(r)] = struct{}{}
		seen[second.Rotate(r)] = struct{}{}
	}

	pieces := make([]model.Hitmap, 0, len(seen))
	for p := range seen {
		pieces = append(pieces, p)
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i] < pieces[j] })
	return pieces
}
