package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/clusterfield/builder"
	"github.com/katalvlaran/clusterfield/cluster"
	"github.com/katalvlaran/clusterfield/config"
	"github.com/katalvlaran/clusterfield/field"
	"github.com/katalvlaran/clusterfield/gridgraph"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clusterfield.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultGridSize, cfg.Grid.Size)
	assert.Zero(t, cfg.Grid.Seed)
	assert.Equal(t, builder.OccupancyProbability, cfg.Grid.Occupancy)
	assert.Equal(t, "strict", cfg.Grid.Policy)
	assert.Equal(t, 4, cfg.Grid.Connectivity)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"defaults"}, cfg.LoadedFrom)
}

func TestLoad_File(t *testing.T) {
	path := writeYAML(t, `
grid:
  size: 32
  seed: 99
  policy: merge
  connectivity: 8
log:
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Grid.Size)
	assert.Equal(t, int64(99), cfg.Grid.Seed)
	assert.Equal(t, "merge", cfg.Grid.Policy)
	assert.Equal(t, gridgraph.Conn8, cfg.Connectivity())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "absent keys keep defaults")
	assert.Equal(t, []string{"defaults", path}, cfg.LoadedFrom)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeYAML(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultGridSize, cfg.Grid.Size)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeYAML(t, "grid:\n  size: 32\n")
	t.Setenv("CLUSTERFIELD_GRID_SIZE", "8")
	t.Setenv("CLUSTERFIELD_SEED", "-3")
	t.Setenv("CLUSTERFIELD_POLICY", "MERGE")
	t.Setenv("CLUSTERFIELD_LOG_LEVEL", "debug")
	t.Setenv("CLUSTERFIELD_OCCUPANCY", "0.5")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Grid.Size)
	assert.Equal(t, int64(-3), cfg.Grid.Seed)
	assert.Equal(t, "merge", cfg.Grid.Policy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.5, cfg.Grid.Occupancy)
	assert.Equal(t, []string{"defaults", path, "environment"}, cfg.LoadedFrom)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("unknown key", func(t *testing.T) {
		_, err := config.Load(writeYAML(t, "grid:\n  sise: 3\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := config.Load(writeYAML(t, "grid: [\n"))
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
	t.Run("bad env int", func(t *testing.T) {
		t.Setenv("CLUSTERFIELD_GRID_SIZE", "big")
		_, err := config.Load("")
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.Contains(t, err.Error(), "CLUSTERFIELD_GRID_SIZE")
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		msg    string
	}{
		{"zero size", func(c *config.Config) { c.Grid.Size = 0 }, "config.grid.size must be at least 1"},
		{"huge size", func(c *config.Config) { c.Grid.Size = 5000 }, "config.grid.size must be at most 4096"},
		{"occupancy", func(c *config.Config) { c.Grid.Occupancy = 1.5 }, "config.grid.occupancy must be at most 1"},
		{"policy", func(c *config.Config) { c.Grid.Policy = "greedy" }, "config.grid.policy must be one of: strict merge"},
		{"connectivity", func(c *config.Config) { c.Grid.Connectivity = 6 }, "config.grid.connectivity must be one of: 4 8"},
		{"level", func(c *config.Config) { c.Log.Level = "trace" }, "config.log.level must be one of"},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }, "config.log.format must be one of"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
	assert.NoError(t, config.Default().Validate())
}

func TestConfig_FieldOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Seed = 5
	cfg.Grid.Policy = "merge"

	opts, err := cfg.FieldOptions()
	require.NoError(t, err)
	f, err := field.Build(cfg.Grid.Size, opts...)
	require.NoError(t, err)

	seed, ok := f.Seed()
	assert.True(t, ok)
	assert.Equal(t, int64(5), seed)
	assert.Equal(t, cluster.MergeOnContact, f.Policy())

	cfg.Grid.Occupancy = 1
	opts, err = cfg.FieldOptions()
	require.NoError(t, err)
	f, err = field.Build(4, opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, f.ClusterCount())

	cfg.Grid.Policy = "bogus"
	_, err = cfg.FieldOptions()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, cluster.ErrUnknownPolicy)
}

func TestConfig_Logger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		cfg := config.Default()
		cfg.Log.Format = format
		cfg.Log.Level = "warn"
		log, err := cfg.Logger()
		require.NoError(t, err, format)
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "debug disabled at warn")
		assert.True(t, log.Core().Enabled(zapcore.ErrorLevel), "error enabled at warn")
	}

	cfg := config.Default()
	cfg.Log.Level = "loud"
	_, err := cfg.Logger()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfig_LoggerTo(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Default()
	cfg.Log.Format = "json"
	log, err := cfg.LoggerTo(&buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown", zap.Int("n", 3))
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"n":3`)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(
		"# local overrides\nCLUSTERFIELD_GRID_SIZE=9\nCLUSTERFIELD_POLICY=merge\nOTHER=ignored\n"), 0o644))
	t.Setenv("CLUSTERFIELD_POLICY", "strict")

	cfg, err := config.Load("", envPath)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Grid.Size)
	assert.Equal(t, "strict", cfg.Grid.Policy, "process environment wins over the file")
	assert.Equal(t, []string{"defaults", envPath, "environment"}, cfg.LoadedFrom)

	_, err = config.Load("", filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
