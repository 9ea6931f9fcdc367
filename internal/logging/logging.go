// Package logging builds the structured logger used by the command line.
//
// Every logger carries a "run" attribute holding a fresh UUID so that lines
// from one invocation can be picked out of a shared log stream.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	// ErrBadLevel indicates a level name other than debug, info, warn or error.
	ErrBadLevel = errors.New("logging: unknown level")
	// ErrBadFormat indicates a format other than text or json.
	ErrBadFormat = errors.New("logging: unknown format")
)

// Options configures New.
type Options struct {
	Level  string    // debug, info, warn or error; empty means info
	Format string    // text or json; empty means text
	Output io.Writer // nil means os.Stderr
}

// ParseLevel maps a level name to its slog level. Case is ignored.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, name)
	}
}

// New returns a logger writing to opts.Output with a per-run id attached.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(out, hopts)
	case FormatJSON:
		h = slog.NewJSONHandler(out, hopts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadFormat, opts.Format)
	}

	return slog.New(h).With(slog.String("run", uuid.NewString())), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
