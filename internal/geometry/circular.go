package geometry

// Circular is implemented by anything that can report a radius.
type Circular interface {
	Radius() float64
}

// Compile-time checks for the types that claim to be Circular.
var (
	_ Circular = RoundPeg{}
	_ Circular = SquarePegAdapter{}
)
