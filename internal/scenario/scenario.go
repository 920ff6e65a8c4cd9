// Package scenario drives the peg checks and collects their verdicts.
package scenario

import (
	"fmt"
	"strconv"

	"pegfit/internal/geometry"
	"pegfit/pkg/logging"
)

const subsystem = "Scenario"

// DemoHoleRadius is the radius of the hole used by Demo.
const DemoHoleRadius = 5.0

// PegKind names the native measurement of a peg.
type PegKind string

const (
	KindRound  PegKind = "round"
	KindSquare PegKind = "square"
)

// Check is one peg to try against the hole.
type Check struct {
	Label string
	Kind  PegKind
	// Size is the radius of a round peg or the width of a square one.
	Size float64
	Peg  geometry.Circular
	// Negate reports "doesn't fit" instead of "fits".
	Negate bool
}

// Result is the outcome of a single Check.
type Result struct {
	Label      string  `json:"label" yaml:"label"`
	Kind       PegKind `json:"kind" yaml:"kind"`
	Size       float64 `json:"size" yaml:"size"`
	HoleRadius float64 `json:"holeRadius" yaml:"holeRadius"`
	PegRadius  float64 `json:"pegRadius" yaml:"pegRadius"`
	Clearance  float64 `json:"clearance" yaml:"clearance"`
	Fits       bool    `json:"fits" yaml:"fits"`
	// Reported is the value printed after the label: Fits, inverted for
	// negated checks.
	Reported bool `json:"reported" yaml:"reported"`
}

// RoundCheck builds a check for a round peg of the given radius.
func RoundCheck(hole geometry.RoundHole, radius float64) Check {
	return Check{
		Label: fmt.Sprintf("Round peg r%s fits round hole r%s", formatSize(radius), formatSize(hole.Radius())),
		Kind:  KindRound,
		Size:  radius,
		Peg:   geometry.NewRoundPeg(radius),
	}
}

// SquareCheck builds a check for a square peg of the given width, seen
// through a SquarePegAdapter. With negate set the check asks whether the
// peg does not fit.
func SquareCheck(hole geometry.RoundHole, width float64, negate bool) Check {
	verb := "fits"
	if negate {
		verb = "doesn't fit"
	}
	return Check{
		Label:  fmt.Sprintf("Square peg w%s %s round hole r%s", formatSize(width), verb, formatSize(hole.Radius())),
		Kind:   KindSquare,
		Size:   width,
		Peg:    geometry.NewSquarePegAdapter(geometry.NewSquarePeg(width)),
		Negate: negate,
	}
}

// Demo returns the fixed demonstration: a hole of radius 5, a round peg of
// radius 5, and square pegs of width 5 and 10. The last check is negated.
func Demo() (geometry.RoundHole, []Check) {
	hole := geometry.NewRoundHole(DemoHoleRadius)
	return hole, []Check{
		RoundCheck(hole, 5),
		SquareCheck(hole, 5, false),
		SquareCheck(hole, 10, true),
	}
}

// Custom builds plain fit checks for the given round radii followed by the
// given square widths.
func Custom(holeRadius float64, rounds, squares []float64) (geometry.RoundHole, []Check) {
	hole := geometry.NewRoundHole(holeRadius)
	checks := make([]Check, 0, len(rounds)+len(squares))
	for _, r := range rounds {
		checks = append(checks, RoundCheck(hole, r))
	}
	for _, w := range squares {
		checks = append(checks, SquareCheck(hole, w, false))
	}
	return hole, checks
}

// Run evaluates every check against hole, in order.
func Run(hole geometry.RoundHole, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		fits := hole.Fits(c.Peg)
		res := Result{
			Label:      c.Label,
			Kind:       c.Kind,
			Size:       c.Size,
			HoleRadius: hole.Radius(),
			PegRadius:  c.Peg.Radius(),
			Clearance:  hole.Clearance(c.Peg),
			Fits:       fits,
			Reported:   fits != c.Negate,
		}
		logging.Debug(subsystem, "%s peg size %s has radius %.7f against hole r%s: fits=%t",
			c.Kind, formatSize(c.Size), res.PegRadius, formatSize(res.HoleRadius), fits)
		results = append(results, res)
	}
	return results
}

// formatSize prints sizes in their shortest form, so 5.0 reads as "5".
func formatSize(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
