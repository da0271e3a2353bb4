package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrPieceDoesNotFit reports that a piece overlaps cells already occupied
// in a cage. It is an expected, frequent outcome during the search, not a
// failure.
var ErrPieceDoesNotFit = errors.New("piece does not fit")

// Cage is the accumulated state of a packing attempt: the union mask of
// all placed pieces plus the individual piece masks, kept sorted so that
// the same multiset of pieces added in any order compares identically.
// A Cage is an immutable value; Add returns a new one.
type Cage struct {
	mask   Hitmap
	pieces []Hitmap
}

// NewCage returns the empty cage.
func NewCage() Cage {
	return Cage{}
}

// Mask returns the combined occupancy of all placed pieces.
func (c Cage) Mask() Hitmap {
	return c.mask
}

// Pieces returns the placed piece masks in sorted order. The returned
// slice is a copy.
func (c Cage) Pieces() []Hitmap {
	out := make([]Hitmap, len(c.pieces))
	copy(out, c.pieces)
	return out
}

// PieceCount returns the number of placed pieces.
func (c Cage) PieceCount() int {
	return len(c.pieces)
}

// Add places a piece into the cage, returning the grown cage. It returns
// ErrPieceDoesNotFit when the piece shares any cell with the current mask.
func (c Cage) Add(piece Hitmap) (Cage, error) {
	if c.mask.Overlaps(piece) {
		return Cage{}, ErrPieceDoesNotFit
	}
	pieces := make([]Hitmap, 0, len(c.pieces)+1)
	pieces = append(pieces, c.pieces...)
	pieces = append(pieces, piece)
	sort.Slice(pieces, func(i, j int) bool { return pieces[i] < pieces[j] })
	return Cage{mask: c.mask.Union(piece), pieces: pieces}, nil
}

// Canonicalize returns a representative of the cage's rotation class:
// the orientation with the numerically smallest mask across the 24 cube
// rotations, with the piece list co-rotated and re-sorted. Replacement
// happens only on a strictly smaller mask, so canonicalizing an already
// canonical cage is a no-op. When the minimal mask is symmetric, two
// orientations of the same packing may keep differently-rotated piece
// lists; the search still converges because every such representative is
// itself a fixed point.
func (c Cage) Canonicalize() Cage {
	best := c
	for _, r := range AllRotations() {
		mask := c.mask.Rotate(r)
		if mask >= best.mask {
			continue
		}
		pieces := make([]Hitmap, len(c.pieces))
		for i, p := range c.pieces {
			pieces[i] = p.Rotate(r)
		}
		sort.Slice(pieces, func(i, j int) bool { return pieces[i] < pieces[j] })
		best = Cage{mask: mask, pieces: pieces}
	}
	return best
}

// Key returns a string identity for the cage: its mask plus its sorted
// piece masks. Two cages with equal keys hold the same cells covered by
// the same multiset of piece shapes.
func (c Cage) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%07x", uint32(c.mask))
	for _, p := range c.pieces {
		fmt.Fprintf(&b, ":%07x", uint32(p))
	}
	return b.String()
}
