package confirmations

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleDialog_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		reprompts  int
	}{
		{"yes", "y\n", false, true, 0},
		{"full yes uppercase", "YES\n", false, true, 0},
		{"no", "n\n", true, false, 0},
		{"full no mixed case", "No\n", true, false, 0},
		{"empty takes default yes", "\n", true, true, 0},
		{"empty takes default no", "\n", false, false, 0},
		{"whitespace is empty", "   \n", true, true, 0},
		{"garbage reprompts", "maybe\nsure\ny\n", false, true, 2},
		{"eof declines", "", true, false, 0},
		{"answer without newline", "y", false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			dialog := NewConsoleDialog(strings.NewReader(tt.input), &out)

			got, err := dialog.Confirm("Do you want to continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.reprompts, strings.Count(out.String(), MsgNotUnderstood))
		})
	}
}

func TestConsoleDialog_Suffix(t *testing.T) {
	var out bytes.Buffer
	dialog := NewConsoleDialog(strings.NewReader("y\ny\n"), &out)

	_, err := dialog.Confirm("Continue?", true)
	require.NoError(t, err)
	_, err = dialog.Confirm("Delete?", false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Continue? [Y/n] ")
	assert.Contains(t, out.String(), "Delete? [y/N] ")
}

func TestAssumeYes(t *testing.T) {
	ok, err := AssumeYes{}.Confirm("anything", false)
	require.NoError(t, err)
	assert.True(t, ok)
}
