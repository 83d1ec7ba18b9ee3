package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Standardized structured logging keys.
const (
	// FieldComponent names the subsystem emitting the event.
	FieldComponent = "component"
	// FieldRunID correlates every event of one CLI invocation.
	FieldRunID = "run_id"
	// FieldFormat carries the detected listing layout.
	FieldFormat = "format"
	// FieldRecords carries a class record count.
	FieldRecords = "records"
	// FieldSubjects carries a distinct subject count.
	FieldSubjects = "subjects"
	// FieldCombinations carries a combination count.
	FieldCombinations = "combinations"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
}

// New constructs a slog logger writing to w using the provided options.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(opts.Level))

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = newJSONHandler(w, levelVar)
	case "console":
		handler = newConsoleHandler(w, levelVar)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
