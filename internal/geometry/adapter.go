package geometry

import "math"

// SquarePegAdapter lets a SquarePeg be used where a Circular is expected.
// It holds its own copy of the peg.
type SquarePegAdapter struct {
	peg SquarePeg
}

// NewSquarePegAdapter wraps peg.
func NewSquarePegAdapter(peg SquarePeg) SquarePegAdapter {
	return SquarePegAdapter{peg: peg}
}

// Radius returns half the diagonal of the square, which is the radius of
// its circumscribed circle.
func (a SquarePegAdapter) Radius() float64 {
	return a.peg.Width() * math.Sqrt(2) / 2
}
