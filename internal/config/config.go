// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/insert"
)

const defaultMaxUploadBytes = 32 << 20

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Load     LoadConfig
	LogLevel slog.Level
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string
}

// DatabaseConfig holds insert target settings. An empty URL selects the
// in-memory inserter.
type DatabaseConfig struct {
	URL   string
	Table string
	// Required lists record keys that must be non-null for the in-memory inserter.
	Required []string
}

// LoadConfig holds upload decoding settings.
type LoadConfig struct {
	Backend        sheetload.Backend
	Extensions     []string
	MaxUploadBytes int64
	MaxCells       int64
}

// Options converts the load settings into sheetload options.
func (c LoadConfig) Options() sheetload.Options {
	return sheetload.Options{
		Backend:    c.Backend,
		Extensions: c.Extensions,
		MaxBytes:   c.MaxUploadBytes,
		MaxCells:   c.MaxCells,
	}
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr: get("SHEETLOAD_HTTP_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			URL:      get("DATABASE_URL", ""),
			Table:    get("SHEETLOAD_TABLE", insert.DefaultTable),
			Required: splitList(get("SHEETLOAD_REQUIRED_FIELDS", "")),
		},
		Load: LoadConfig{
			Backend:    sheetload.Backend(strings.ToLower(get("SHEETLOAD_BACKEND", string(sheetload.BackendExcelize)))),
			Extensions: splitList(get("SHEETLOAD_EXTENSIONS", strings.Join(sheetload.DefaultExtensions, ","))),
		},
	}

	if _, err := cfg.Load.Options().ParserBackend(); err != nil {
		return nil, fmt.Errorf("SHEETLOAD_BACKEND: %w", err)
	}

	maxBytes, err := strconv.ParseInt(get("SHEETLOAD_MAX_UPLOAD_BYTES", strconv.Itoa(defaultMaxUploadBytes)), 10, 64)
	if err != nil || maxBytes < 0 {
		return nil, fmt.Errorf("SHEETLOAD_MAX_UPLOAD_BYTES must be a non-negative integer")
	}
	cfg.Load.MaxUploadBytes = maxBytes

	maxCells, err := strconv.ParseInt(get("SHEETLOAD_MAX_CELLS", strconv.Itoa(sheetload.DefaultMaxCells)), 10, 64)
	if err != nil || maxCells < 0 {
		return nil, fmt.Errorf("SHEETLOAD_MAX_CELLS must be a non-negative integer")
	}
	cfg.Load.MaxCells = maxCells

	if err := cfg.LogLevel.UnmarshalText([]byte(get("SHEETLOAD_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("SHEETLOAD_LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
