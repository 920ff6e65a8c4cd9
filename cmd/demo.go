package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"pegfit/internal/color"
	"pegfit/internal/config"
	"pegfit/internal/report"
	"pegfit/internal/scenario"
	"pegfit/pkg/logging"
)

// prepare loads the configuration, applies the command line on top of it
// and sets up logging and colour. It returns the rendering options.
func prepare(cmd *cobra.Command, opts *globalOptions) (report.Options, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("CLI", err, "Failed to load configuration")
		return report.Options{}, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		logging.InitForCLI(logging.LevelInfo, cmd.ErrOrStderr())
		logging.Error("CLI", err, "Invalid log level in configuration")
		return report.Options{}, err
	}
	if opts.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	outputName := cfg.Output
	if cmd.Flags().Changed("output") {
		outputName = opts.output
	}
	format, err := report.ParseFormat(outputName)
	if err != nil {
		logging.Error("CLI", err, "Invalid output format")
		return report.Options{}, err
	}

	color.Initialize(cfg.Theme != config.ThemeLight)
	enabled := colorEnabled(cfg, opts.noColor)

	logging.Debug("CLI", "Output format %s, colour %t, log level %s", format, enabled, level)
	return report.Options{Format: format, Color: enabled}, nil
}

// runDemo runs the fixed demonstration and prints the results.
func runDemo(cmd *cobra.Command, opts *globalOptions) error {
	renderOpts, err := prepare(cmd, opts)
	if err != nil {
		return err
	}

	hole, checks := scenario.Demo()
	logging.Debug("CLI", "Running demonstration with %d pegs against hole r%v", len(checks), hole.Radius())
	return report.Render(cmd.OutOrStdout(), scenario.Run(hole, checks), renderOpts)
}

// colorEnabled resolves colour from the config file, a non-empty NO_COLOR
// and --no-color. Either of the last two turns colour off.
func colorEnabled(cfg config.PegfitConfig, noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return cfg.ColorEnabled(true)
}
