// Package logging defines the structured logger used across chainnotes and
// its zap and slog implementations.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "note purged", "note_id", id, "user_id", uid)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger

	// Sync flushes buffered entries.
	Sync() error
}

// New builds the logger named by backend ("zap" or "slog") tagged with service.
func New(backend, service string) (Logger, error) {
	switch backend {
	case "zap", "":
		return NewZapLogger(service)
	case "slog":
		l := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		return NewSlogLogger(l).With("service", service), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
