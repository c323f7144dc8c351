package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatText is human-readable output for development and terminals.
	FormatText Format = "text"
	// FormatJSON is structured output for log aggregation.
	FormatJSON Format = "json"
)

// Config carries environment-driven logger defaults.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format Format `env:"LOG_FORMAT" envDefault:"text"`
}

type settings struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*settings)

func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat sets the output encoding. Invalid formats panic so that a
// misconfigured embedding fails at startup rather than at first log call.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatText, FormatJSON:
			s.format = f
		default:
			panic(fmt.Errorf("logger: invalid format %q, must be %q or %q", f, FormatText, FormatJSON))
		}
	}
}

// WithOutput redirects log output. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttrs attaches static attributes to every record.
func WithAttrs(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithConfig applies environment-driven settings. Unknown level or format
// strings fall back to the defaults instead of failing, because a bad env
// var must not take the host's chat client down.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.level = parseLevel(cfg.Level)
		switch cfg.Format {
		case FormatText, FormatJSON:
			s.format = cfg.Format
		}
	}
}

// New creates a slog.Logger with the given options applied over the
// defaults: text format, info level, stderr output.
func New(opts ...Option) *slog.Logger {
	s := settings{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
	for _, opt := range opts {
		opt(&s)
	}

	ho := &slog.HandlerOptions{Level: s.level}

	var h slog.Handler
	switch s.format {
	case FormatJSON:
		h = slog.NewJSONHandler(s.output, ho)
	default:
		h = slog.NewTextHandler(s.output, ho)
	}

	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}
	return slog.New(h)
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
