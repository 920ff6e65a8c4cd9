package geometry

// RoundHole accepts any Circular peg whose radius does not exceed its own.
type RoundHole struct {
	radius float64
}

// NewRoundHole creates a hole with the given radius.
func NewRoundHole(radius float64) RoundHole {
	return RoundHole{radius: radius}
}

// Radius returns the radius of the hole.
func (h RoundHole) Radius() float64 {
	return h.radius
}

// Fits reports whether peg goes into the hole. A peg of exactly the same
// radius fits.
func (h RoundHole) Fits(peg Circular) bool {
	return h.radius >= peg.Radius()
}

// Clearance returns the gap between the hole and the peg. It is negative
// when the peg is too large.
func (h RoundHole) Clearance(peg Circular) float64 {
	return h.radius - peg.Radius()
}
