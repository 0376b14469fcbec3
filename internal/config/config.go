// Package config reads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "GOFRAME_LOG_LEVEL"
	EnvOutputDir = "GOFRAME_OUTPUT_DIR"
	EnvPlotScale = "GOFRAME_PLOT_SCALE"
)

// DefaultPlotScale is the deformation magnification used when neither the
// environment nor a flag sets one.
const DefaultPlotScale = 100.0

// Config holds settings shared by every command.
type Config struct {
	LogLevel  slog.Level
	OutputDir string
	PlotScale float64
}

// Load reads files (".env" when none are given) into the environment and
// builds a Config from it. A missing file is not an error; variables
// already set in the process win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: reading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		LogLevel:  slog.LevelWarn,
		OutputDir: os.Getenv(EnvOutputDir),
		PlotScale: DefaultPlotScale,
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv(EnvPlotScale); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || !(scale > 0) {
			return nil, fmt.Errorf("config: %s must be a positive number, got %q", EnvPlotScale, v)
		}
		cfg.PlotScale = scale
	}
	return cfg, nil
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}
	return lvl, nil
}

// OutputPath places a relative path under OutputDir. Absolute paths and an
// empty OutputDir leave path unchanged.
func (c *Config) OutputPath(path string) string {
	if path == "" || c.OutputDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
