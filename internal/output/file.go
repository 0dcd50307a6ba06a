package output

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// FileSink writes each unit to the file named by dest, creating parent
// directories as needed.
type FileSink struct {
	log *slog.Logger
}

func NewFileSink(log *slog.Logger) *FileSink {
	if log == nil {
		log = slog.Default()
	}
	return &FileSink{log: log}
}

func (s *FileSink) Write(_ context.Context, dest, code string) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(dest, []byte(code), 0644); err != nil {
		return err
	}
	s.log.Info("wrote unit", "dest", dest, "size", humanize.Bytes(uint64(len(code))))
	return nil
}

func (s *FileSink) Close() error { return nil }
