// Package report writes scenario results in the selected output format.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"pegfit/internal/color"
	"pegfit/internal/scenario"
)

// Options controls rendering.
type Options struct {
	Format OutputFormat
	Color  bool
}

// Render writes results to w.
func Render(w io.Writer, results []scenario.Result, opts Options) error {
	switch opts.Format {
	case OutputFormatText, "":
		return renderText(w, results, opts)
	case OutputFormatTable:
		return renderTable(w, results, opts)
	case OutputFormatJSON:
		return renderJSON(w, results)
	case OutputFormatYAML:
		return renderYAML(w, results)
	default:
		return UnsupportedFormatError(opts.Format)
	}
}

// renderText prints one "<label>: <verdict>" line per result.
func renderText(w io.Writer, results []scenario.Result, opts Options) error {
	styles := color.NewStyles(w, opts.Color)
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Label, styles.Verdict(r.Reported)); err != nil {
			return err
		}
	}
	return nil
}

// renderTable colours cells through the same lipgloss styles as the text
// renderer, so a non-terminal writer gets a plain table.
func renderTable(w io.Writer, results []scenario.Result, opts Options) error {
	styles := color.NewStyles(w, opts.Color)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	columns := []string{"PEG", "SIZE", "RADIUS", "HOLE", "CLEARANCE", "FITS"}
	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = styles.Header.Render(col)
	}
	t.AppendHeader(headers)

	for _, r := range results {
		fits := styles.Success.Render("yes")
		if !r.Fits {
			fits = styles.Failure.Render("no")
		}
		t.AppendRow(table.Row{
			string(r.Kind),
			strconv.FormatFloat(r.Size, 'g', -1, 64),
			fmt.Sprintf("%.4f", r.PegRadius),
			styles.Muted.Render(strconv.FormatFloat(r.HoleRadius, 'g', -1, 64)),
			fmt.Sprintf("%+.4f", r.Clearance),
			fits,
		})
	}

	t.Render()
	return nil
}

func renderJSON(w io.Writer, results []scenario.Result) error {
	if results == nil {
		results = []scenario.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, results []scenario.Result) error {
	if results == nil {
		results = []scenario.Result{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
