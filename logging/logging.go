// Package logging builds the structured loggers used across the module: a
// log/slog front end on top of a pterm logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/pterm/pterm"
)

const codespace = "logging"

var ErrUnknownLevel = errorsmod.Register(codespace, 2, "unknown log level")

// Options configures New. The zero value logs colourful info lines to stderr.
type Options struct {
	Level  string
	JSON   bool
	Writer io.Writer
}

// ParseLevel maps "trace", "debug", "info", "warn", "error" and "disabled"
// to a pterm level. The empty string means info.
func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "disabled", "off", "none":
		return pterm.LogLevelDisabled, nil
	}
	return 0, errorsmod.Wrapf(ErrUnknownLevel, "%q", s)
}

// New returns a slog logger backed by pterm.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	l := pterm.DefaultLogger.
		WithLevel(level).
		WithWriter(w)
	if opts.JSON {
		l = l.WithFormatter(pterm.LogFormatterJSON)
	}
	return slog.New(pterm.NewSlogHandler(l)), nil
}

// Discard returns a logger that writes nothing.
func Discard() *slog.Logger {
	l := pterm.DefaultLogger.
		WithLevel(pterm.LogLevelDisabled).
		WithWriter(io.Discard)
	return slog.New(pterm.NewSlogHandler(l))
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
