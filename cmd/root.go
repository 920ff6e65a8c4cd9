package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	output  string
	debug   bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "pegfit",
		Short: "Check whether round and square pegs fit a round hole",
		Long: `pegfit demonstrates the Adapter pattern with pegs and holes.

Run without a subcommand it tries a round peg of radius 5 and square pegs
of width 5 and 10 against a round hole of radius 5. Square pegs are seen
through an adapter that reports the radius of their circumscribed circle,
so both kinds go through the same fit check.`,
		Args: cobra.NoArgs,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. an unsupported output format)
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.SetVersionTemplate(`{{printf "pegfit version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Output format: text, table, json or yaml (default from config, else text)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
