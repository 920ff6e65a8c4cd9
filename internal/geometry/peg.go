package geometry

// RoundPeg is a peg measured by its radius.
type RoundPeg struct {
	radius float64
}

// NewRoundPeg creates a round peg with the given radius.
func NewRoundPeg(radius float64) RoundPeg {
	return RoundPeg{radius: radius}
}

// Radius returns the stored radius.
func (p RoundPeg) Radius() float64 {
	return p.radius
}

// SquarePeg is a peg measured by the width of its side. It does not
// implement Circular; wrap it in a SquarePegAdapter for that.
type SquarePeg struct {
	width float64
}

// NewSquarePeg creates a square peg with the given width.
func NewSquarePeg(width float64) SquarePeg {
	return SquarePeg{width: width}
}

// Width returns the stored width.
func (p SquarePeg) Width() float64 {
	return p.width
}
