package model

// ShapeBuilder accumulates an occupancy mask by walking a current position
// through the cube one unit step at a time. It exists for the short,
// hardcoded move sequences that define the base piece shapes.
type ShapeBuilder struct {
	hitmap Hitmap
	at     Coordinate
}

// NewShapeBuilder starts a shape at the given cell and marks it occupied.
func NewShapeBuilder(start Coordinate) *ShapeBuilder {
	return &ShapeBuilder{hitmap: HitmapOf(start), at: start}
}

// Move advances the current position by the unit vector d and marks the
// new cell occupied.
func (b *ShapeBuilder) Move(d Coordinate) *ShapeBuilder {
	b.at = b.at.Translate(d)
	b.hitmap = b.hitmap.With(b.at)
	return b
}

// Reset jumps the current position back to c without marking anything.
// The usual target is the start cell, which is already occupied.
func (b *ShapeBuilder) Reset(c Coordinate) *ShapeBuilder {
	b.at = c
	return b
}

// Build returns the accumulated mask.
func (b *ShapeBuilder) Build() Hitmap {
	return b.hitmap
}
