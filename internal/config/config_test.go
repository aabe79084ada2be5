package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, "cubegen.yaml", `
grid:
  nx: 40
  margin: 4.5
eval:
  workers: 3
log:
  level: debug
records: runs
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Grid.Nx)
	assert.Equal(t, 80, cfg.Grid.Ny)
	assert.InDelta(t, 4.5, cfg.Grid.Margin, 1e-12)
	assert.Equal(t, 3, cfg.Eval.Workers)
	assert.Equal(t, 8000, cfg.Eval.ChunkSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "runs", cfg.Records)
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, "cubegen.toml", `
[grid]
resolution = 0.25

[log]
format = "json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.25, cfg.Grid.Resolution, 1e-12)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("CUBEGEN_GRID_NZ", "12")
	t.Setenv("CUBEGEN_EVAL_CHUNK_SIZE", "100")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Grid.Nz)
	assert.Equal(t, 100, cfg.Eval.ChunkSize)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("negative margin", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "grid:\n  margin: -1\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("unknown log format", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "log:\n  format: xml\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}
