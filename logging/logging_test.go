package logging

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want pterm.LogLevel
	}{
		{"", pterm.LogLevelInfo},
		{"DEBUG", pterm.LogLevelDebug},
		{"warn", pterm.LogLevelWarn},
		{" error ", pterm.LogLevelError},
		{"off", pterm.LogLevelDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "info", JSON: true, Writer: &buf})
	require.NoError(t, err)
	l.Info("round complete", "round", 3)
	require.Contains(t, buf.String(), "round complete")
	require.Contains(t, buf.String(), `"round"`)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Options{Level: "error", Writer: &buf})
	require.NoError(t, err)
	l.Info("hidden")
	require.Empty(t, buf.String())
}

func TestOrDiscard(t *testing.T) {
	require.NotNil(t, OrDiscard(nil))
	l := Discard()
	require.Same(t, l, OrDiscard(l))
}
