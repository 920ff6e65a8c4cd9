// Package geometry holds the peg and hole types used by the pegfit
// demonstration of the Adapter pattern.
//
// RoundHole is the client. It only knows the Circular capability and
// never looks at the native measurement of whatever it is given.
// RoundPeg satisfies Circular directly. SquarePeg does not: it is
// measured by width. SquarePegAdapter wraps a SquarePeg and reports the
// radius of the smallest circle that circumscribes it, so a square peg
// can be checked with the same Fits call as a round one.
//
// # Usage Example
//
//	hole := geometry.NewRoundHole(5)
//	hole.Fits(geometry.NewRoundPeg(5))                               // true
//	hole.Fits(geometry.NewSquarePegAdapter(geometry.NewSquarePeg(5)))  // true
//	hole.Fits(geometry.NewSquarePegAdapter(geometry.NewSquarePeg(10))) // false
//
// None of the operations can fail. Negative sizes are not rejected; the
// arithmetic is carried out as written.
package geometry
