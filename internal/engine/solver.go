package engine

import (
	"errors"
	"sort"

	"github.com/cagepack/cagepack/internal/model"
)

// Solver enumerates all maximal packings reachable from the empty cage
// using a fixed candidate piece set. Supply is unlimited: the same
// orientation may appear more than once in a packing when it fits.
type Solver struct {
	pieces []model.Hitmap
}

// New returns a solver over the full candidate piece set.
func New() *Solver {
	return &Solver{pieces: CandidatePieces()}
}

// NewWithPieces returns a solver over a custom candidate set.
func NewWithPieces(pieces []model.Hitmap) *Solver {
	return &Solver{pieces: pieces}
}

// Result is the deduplicated collection of canonical end states found by
// a search.
type Result struct {
	// EndStates holds one representative per rotation class of maximal
	// packing, in a fixed order.
	EndStates []model.Cage
}

// WithPieceCount returns the end states that placed exactly n pieces.
func (r Result) WithPieceCount(n int) []model.Cage {
	var out []model.Cage
	for _, c := range r.EndStates {
		if c.PieceCount() == n {
			out = append(out, c)
		}
	}
	return out
}

// Solve runs the backtracking search with an explicit LIFO work list.
// Every cage to which no candidate piece can be added is canonicalized
// and recorded; duplicate canonical entries collapse into one. The same
// intermediate configuration may be revisited through different piece
// orders; with 27 cells that redundancy is cheap and not worth memoizing.
func (s *Solver) Solve() Result {
	endStates := make(map[string]model.Cage)

	fringe := []model.Cage{model.NewCage()}
	for len(fringe) > 0 {
		cage := fringe[len(fringe)-1]
		fringe = fringe[:len(fringe)-1]

		terminal := true
		for _, piece := range s.pieces {
			next, err := cage.Add(piece)
			if errors.Is(err, model.ErrPieceDoesNotFit) {
				continue
			}
			terminal = false
			fringe = append(fringe, next)
		}

		if terminal {
			canon := cage.Canonicalize()
			endStates[canon.Key()] = canon
		}
	}

	return newResult(endStates)
}

// SolveRecursive runs the same search on the call stack. Exploration
// order differs from Solve but the canonical result set is identical.
func (s *Solver) SolveRecursive() Result {
	endStates := make(map[string]model.Cage)
	s.expand(model.NewCage(), endStates)
	return newResult(endStates)
}

func (s *Solver) expand(cage model.Cage, endStates map[string]model.Cage) {
	terminal := true
	for _, piece := range s.pieces {
		next, err := cage.Add(piece)
		if errors.Is(err, model.ErrPieceDoesNotFit) {
			continue
		}
		terminal = false
		s.expand(next, endStates)
	}

	if terminal {
		canon := cage.Canonicalize()
		endStates[canon.Key()] = canon
	}
}

func newResult(endStates map[string]model.Cage) Result {
	keys := make([]string, 0, len(endStates))
	for k := range endStates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cages := make([]model.Cage, 0, len(keys))
	for _, k := range keys {
		cages = append(cages, endStates[k])
	}
	return Result{EndStates: cages}
}
