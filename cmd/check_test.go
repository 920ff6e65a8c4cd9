package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, newRootCmd(), "check", "--hole", "5", "--round", "4.5", "--round", "6", "--square", "7,8")
	require.NoError(t, err)

	expected := "Round peg r4.5 fits round hole r5: true\n" +
		"Round peg r6 fits round hole r5: false\n" +
		"Square peg w7 fits round hole r5: true\n" +
		"Square peg w8 fits round hole r5: false\n"
	assert.Equal(t, expected, stdout)
}

func TestCheckCommand_DefaultHole(t *testing.T) {
	stdout, _, err := executeCommand(t, newRootCmd(), "check", "--square", "10")
	require.NoError(t, err)
	assert.Equal(t, "Square peg w10 fits round hole r5: false\n", stdout)
}

func TestCheckCommand_TableOutput(t *testing.T) {
	stdout, _, err := executeCommand(t, newRootCmd(), "check", "--round", "1", "-o", "table")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CLEARANCE")
	assert.Contains(t, stdout, "+4.0000")
}

func TestCheckCommand_RequiresPegs(t *testing.T) {
	_, _, err := executeCommand(t, newRootCmd(), "check", "--hole", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoPegs)
}
