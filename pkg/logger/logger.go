package logger

import (
	"io"
	"log/slog"
	"os"
)

// Output formats.
const (
	JSON = "json"
	Text = "text"
)

// Logger wraps slog so call sites get Fatal and component scoping without
// importing slog themselves.
type Logger struct {
	*slog.Logger
}

type Config struct {
	Level     string // debug, info, warn, error; defaults to info
	Format    string // json or text; defaults to json
	Output    io.Writer
	AddSource bool
	Service   string
}

func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == Text {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}

	if cfg.Service != "" {
		handler = handler.WithAttrs([]slog.Attr{
			slog.String("service", cfg.Service),
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// Component returns a child logger tagged with a component name, used to
// tell repository, service, and transport lines apart within one service.
func (l *Logger) Component(name string) *Logger {
	return &Logger{Logger: l.Logger.With("component", name)}
}

// Fatal logs at error level and exits. For startup failures only; request
// paths return errors instead.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
