// Package logging builds the CLI's slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format represents logger output format.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*options)

type options struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithFormat sets the output format.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithOutput sets the destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// New returns a logger writing text to stderr at info level unless options
// say otherwise.
func New(opts ...Option) (*slog.Logger, error) {
	cfg := options{level: slog.LevelInfo, format: FormatText, output: os.Stderr}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		return nil, fmt.Errorf("logging: invalid format %q: must be %q or %q", cfg.format, FormatJSON, FormatText)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler), nil
}

// ParseLevel accepts the slog level names case-insensitively.
func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: %w", err)
	}
	return level, nil
}

// FromStrings builds a logger from textual level and format settings.
func FromStrings(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return New(WithOutput(w), WithLevel(lvl), WithFormat(Format(strings.ToLower(strings.TrimSpace(format)))))
}
