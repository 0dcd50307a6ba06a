// Package output persists generated Go units.
package output

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

const (
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Sink stores one generated unit under a destination name. A failed
// Write is final; callers do not retry.
type Sink interface {
	Write(ctx context.Context, dest, code string) error
	Close() error
}

// Open returns the sink named by kind. sqlitePath is only used by the
// sqlite sink.
func Open(ctx context.Context, kind, sqlitePath string, log *slog.Logger) (Sink, error) {
	if log == nil {
		log = slog.Default()
	}
	switch kind {
	case "", KindFile:
		return NewFileSink(log), nil
	case KindSQLite:
		return OpenSQLite(ctx, sqlitePath, log)
	default:
		return nil, fmt.Errorf("unknown sink %q", kind)
	}
}

// Store writes code to dest and closes s. A Close failure is reported
// even when the write succeeded.
func Store(ctx context.Context, s Sink, dest, code string) error {
	err := s.Write(ctx, dest, code)
	if cerr := s.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("close sink: %w", cerr))
	}
	return err
}
