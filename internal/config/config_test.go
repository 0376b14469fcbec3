package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLogLevel, EnvOutputDir, EnvPlotScale} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Empty(t, cfg.OutputDir)
	assert.Equal(t, DefaultPlotScale, cfg.PlotScale)
}

func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "GOFRAME_LOG_LEVEL=debug\nGOFRAME_OUTPUT_DIR=out\nGOFRAME_PLOT_SCALE=250\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.Equal(t, 250.0, cfg.PlotScale)
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOFRAME_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv(EnvLogLevel, "ERROR")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
}

func TestInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "loud")
	_, err := FromEnv()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv(EnvPlotScale, "-3")
	_, err = FromEnv()
	assert.ErrorContains(t, err, EnvPlotScale)
}

func TestOutputPath(t *testing.T) {
	cfg := &Config{OutputDir: "results"}
	assert.Equal(t, filepath.Join("results", "plot.png"), cfg.OutputPath("plot.png"))
	assert.Equal(t, "/tmp/plot.png", cfg.OutputPath("/tmp/plot.png"))
	assert.Empty(t, cfg.OutputPath(""))

	assert.Equal(t, "plot.png", (&Config{}).OutputPath("plot.png"))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(slog.LevelInfo, &buf)
	log.Debug("hidden")
	log.Info("shown", "nodes", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown nodes=3")
}
