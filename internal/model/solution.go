package model

import "github.com/google/uuid"

// Solution is the reportable form of a canonical packing: the occupied
// coordinates of each placed piece. It is what the printers and exporters
// consume.
type Solution struct {
	ID     string         `json:"id"`
	Pieces [][]Coordinate `json:"pieces"`
}

// NewSolution materializes a cage into a solution with a fresh short ID.
func NewSolution(c Cage) Solution {
	pieces := make([][]Coordinate, 0, c.PieceCount())
	for _, p := range c.Pieces() {
		pieces = append(pieces, p.Coordinates())
	}
	return Solution{
		ID:     uuid.New().String()[:8],
		Pieces: pieces,
	}
}

// CellCount returns the total number of occupied cells across all pieces.
func (s Solution) CellCount() int {
	total := 0
	for _, p := range s.Pieces {
		total += len(p)
	}
	return total
}
