// Package config reads esgo settings from the environment and optional
// .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"esgo/internal/output"
)

const (
	DefaultSource     = "./source/index.json"
	DefaultDest       = "./dest/main.go"
	DefaultSQLitePath = "esgo.db"
)

type Config struct {
	Env        string // ESGO_ENV
	Source     string // ESGO_SOURCE
	Dest       string // ESGO_DEST
	Sink       string // ESGO_SINK: file or sqlite
	SQLitePath string // ESGO_SQLITE_PATH
	Goimports  bool   // ESGO_GOIMPORTS
}

// Load reads the given .env files (".env" when none are named) and then
// the process environment. Missing files are skipped; variables already
// set in the environment win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
	}

	cfg := &Config{
		Env:        os.Getenv("ESGO_ENV"),
		Source:     getenv("ESGO_SOURCE", DefaultSource),
		Dest:       getenv("ESGO_DEST", DefaultDest),
		Sink:       getenv("ESGO_SINK", output.KindFile),
		SQLitePath: getenv("ESGO_SQLITE_PATH", DefaultSQLitePath),
	}
	if v := os.Getenv("ESGO_GOIMPORTS"); v != "" {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, fmt.Errorf("ESGO_GOIMPORTS: %w", err)
		}
		cfg.Goimports = b
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Sink {
	case output.KindFile, output.KindSQLite:
	default:
		return fmt.Errorf("ESGO_SINK: unknown sink %q", c.Sink)
	}
	if c.Dest == "" {
		return errors.New("ESGO_DEST: destination is empty")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
