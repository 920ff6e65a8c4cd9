package color

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	successColor = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}
	failureColor = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#616161", Dark: "#9E9E9E"}
	headerColor  = lipgloss.AdaptiveColor{Light: "#00838F", Dark: "#80DEEA"}
)

// Initialize sets whether the terminal background is dark.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// Styles groups the styles used by the text and table renderers.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

// NewStyles returns styles for w. With enabled false every style renders
// its input unchanged.
func NewStyles(w io.Writer, enabled bool) Styles {
	if !enabled {
		return Styles{
			Success: lipgloss.NewStyle(),
			Failure: lipgloss.NewStyle(),
			Muted:   lipgloss.NewStyle(),
			Header:  lipgloss.NewStyle(),
		}
	}

	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(lipgloss.HasDarkBackground())
	return Styles{
		Success: r.NewStyle().Foreground(successColor),
		Failure: r.NewStyle().Foreground(failureColor),
		Muted:   r.NewStyle().Foreground(mutedColor),
		Header:  r.NewStyle().Foreground(headerColor),
	}
}

// Verdict renders a boolean as "true" or "false" in the matching style.
func (s Styles) Verdict(ok bool) string {
	if ok {
		return s.Success.Render(strconv.FormatBool(ok))
	}
	return s.Failure.Render(strconv.FormatBool(ok))
}
