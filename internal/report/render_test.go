package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"pegfit/internal/scenario"
)

func demoResults() []scenario.Result {
	return scenario.Run(scenario.Demo())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
		wantErr  bool
	}{
		{"", OutputFormatText, false},
		{"text", OutputFormatText, false},
		{"TABLE", OutputFormatTable, false},
		{" json ", OutputFormatJSON, false},
		{"yaml", OutputFormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				var unsupported UnsupportedFormatError
				require.True(t, errors.As(err, &unsupported))
				assert.Contains(t, err.Error(), "xml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoResults(), Options{Format: OutputFormatText})
	require.NoError(t, err)

	expected := "Round peg r5 fits round hole r5: true\n" +
		"Square peg w5 fits round hole r5: true\n" +
		"Square peg w10 doesn't fit round hole r5: true\n"
	assert.Equal(t, expected, buf.String())
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoResults(), Options{Format: OutputFormatTable})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{"PEG", "CLEARANCE", "round", "square", "3.5355", "7.0711", "-2.0711", "yes", "no"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "colour codes present with colour disabled")
}

func TestRender_ColourFollowsWriter(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "0")

	for _, format := range []OutputFormat{OutputFormatText, OutputFormatTable} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			err := Render(&buf, demoResults(), Options{Format: format, Color: true})
			require.NoError(t, err)

			assert.NotEmpty(t, buf.String())
			assert.NotContains(t, buf.String(), "\x1b[", "a non-terminal writer gets plain output")
		})
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoResults(), Options{Format: OutputFormatJSON})
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "Square peg w10 doesn't fit round hole r5", decoded[2]["label"])
	assert.Equal(t, "square", decoded[2]["kind"])
	assert.Equal(t, false, decoded[2]["fits"])
	assert.Equal(t, true, decoded[2]["reported"])
	assert.InDelta(t, 7.0710678, decoded[2]["pegRadius"], 1e-7)
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, Options{Format: OutputFormatJSON}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoResults(), Options{Format: OutputFormatYAML})
	require.NoError(t, err)

	var decoded []scenario.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "Round peg r5 fits round hole r5", decoded[0].Label)
	assert.Equal(t, scenario.KindRound, decoded[0].Kind)
	assert.True(t, decoded[1].Fits)
	assert.Contains(t, buf.String(), "holeRadius: 5")
}

func TestRender_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, demoResults(), Options{Format: "xml"})

	var unsupported UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
	assert.Empty(t, buf.String())
}
