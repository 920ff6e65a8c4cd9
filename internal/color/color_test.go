package color

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles_PlainOutput(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")

	tests := []struct {
		name    string
		dark    bool
		enabled bool
	}{
		{"disabled on dark background", true, false},
		{"disabled on light background", false, false},
		// A bytes.Buffer is not a terminal, so no colour codes are emitted.
		{"enabled on non-terminal, dark", true, true},
		{"enabled on non-terminal, light", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.dark)
			assert.Equal(t, tt.dark, lipgloss.HasDarkBackground())

			var buf bytes.Buffer
			styles := NewStyles(&buf, tt.enabled)

			assert.Equal(t, "true", styles.Verdict(true))
			assert.Equal(t, "false", styles.Verdict(false))
			assert.Equal(t, "5", styles.Muted.Render("5"))
			assert.Equal(t, "PEG", styles.Header.Render("PEG"))
		})
	}
}
