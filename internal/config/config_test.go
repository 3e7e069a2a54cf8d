package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "%g", cfg.Format)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 16, cfg.Buffer.Depth)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "rpncalc.toml", `
format = "%.3f"
strict = true

[buffer]
depth = 4

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "%.3f", cfg.Format)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 4, cfg.Buffer.Depth)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_UnboundedDepth(t *testing.T) {
	cfg, err := Load(writeFile(t, "unbounded.toml", "[buffer]\ndepth = 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Buffer.Depth)

	cfg, err = Load(writeFile(t, "unbounded.yaml", "buffer:\n  depth: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Buffer.Depth)

	cfg, err = Load(writeFile(t, "nobuffer.toml", `strict = true`))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Buffer.Depth)
}

func TestLoad_YAML(t *testing.T) {
	for _, ext := range []string{".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFile(t, "rpncalc"+ext, "format: \"%e\"\nbuffer:\n  depth: 2\n")
			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, "%e", cfg.Format)
			assert.False(t, cfg.Strict)
			assert.Equal(t, 2, cfg.Buffer.Depth)
			assert.Equal(t, "warn", cfg.Log.Level)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeFile(t, "empty.toml", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad-toml", "bad.toml", "format = "},
		{"bad-yaml", "bad.yaml", "format: [unclosed"},
		{"no-verb", "noverb.toml", `format = "plain"`},
		{"escaped-percent", "percent.toml", `format = "100%%"`},
		{"int-verb", "int.toml", `format = "%d"`},
		{"string-verb", "string.toml", `format = "%s"`},
		{"two-verbs", "two.toml", `format = "%g %g"`},
		{"negative-depth", "depth.toml", "[buffer]\ndepth = -1\n"},
		{"bad-level", "level.toml", "[log]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	for _, name := range []string{"missing.toml", "missing.yaml"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(filepath.Join(t.TempDir(), name))
			require.Error(t, err)
			assert.ErrorIs(t, err, os.ErrNotExist)
			assert.Contains(t, err.Error(), "reading config")
		})
	}
}

func TestValidate_Format(t *testing.T) {
	for _, format := range []string{"%g", "%.3f", "%e", "%v", "= %g"} {
		cfg := Default()
		cfg.Format = format
		assert.NoError(t, cfg.Validate(), format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", `format = "%.1f"`)
	t.Setenv(EnvVar, path)
	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "%.1f", cfg.Format)
}

func TestLoadFromEnv_Fallback(t *testing.T) {
	t.Setenv(EnvVar, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}
