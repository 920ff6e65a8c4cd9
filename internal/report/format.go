package report

import (
	"fmt"
	"strings"
)

// OutputFormat represents the output format for results
type OutputFormat string

const (
	OutputFormatText  OutputFormat = "text"
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// Formats lists every supported format, in the order shown in help text.
var Formats = []OutputFormat{OutputFormatText, OutputFormatTable, OutputFormatJSON, OutputFormatYAML}

// UnsupportedFormatError denotes a format name pegfit cannot render.
type UnsupportedFormatError string

// Error returns the formatted error.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q (want one of %s)", string(e), formatNames())
}

// ParseFormat resolves a format name. An empty name means text.
func ParseFormat(name string) (OutputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return OutputFormatText, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", UnsupportedFormatError(name)
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
