package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"pegfit/internal/report"
	"pegfit/internal/scenario"
	"pegfit/pkg/logging"
)

var errNoPegs = errors.New("at least one --round or --square peg is required")

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var (
		holeRadius float64
		rounds     []float64
		squares    []float64
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check pegs of your own sizes against a round hole",
		Long: `Checks round pegs (given by radius) and square pegs (given by width)
against a round hole. Square pegs go through the same adapter as in the
demonstration. A peg fits when its radius does not exceed the hole's.

Example:
  pegfit check --hole 5 --round 4.5 --square 7 --square 8 -o table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rounds) == 0 && len(squares) == 0 {
				return errNoPegs
			}

			renderOpts, err := prepare(cmd, opts)
			if err != nil {
				return err
			}

			hole, checks := scenario.Custom(holeRadius, rounds, squares)
			logging.Debug("CLI", "Checking %d pegs against hole r%v", len(checks), hole.Radius())
			return report.Render(cmd.OutOrStdout(), scenario.Run(hole, checks), renderOpts)
		},
	}

	cmd.Flags().Float64Var(&holeRadius, "hole", scenario.DemoHoleRadius, "Radius of the round hole")
	cmd.Flags().Float64SliceVar(&rounds, "round", nil, "Radius of a round peg (repeatable)")
	cmd.Flags().Float64SliceVar(&squares, "square", nil, "Width of a square peg (repeatable)")

	return cmd
}
