package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guardgen/pkg/guardast"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "guardgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
source: src/guards.ts
output: out/guards_gen.go
package: typeguards
kinds: [number, string]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "src/guards.ts", cfg.Source)
	assert.Equal(t, "out/guards_gen.go", cfg.Output)
	assert.Equal(t, "typeguards", cfg.Package)
	assert.Equal(t, DefaultDialect, cfg.Dialect, "unset keys keep their defaults")
	assert.Equal(t, []guardast.Kind{guardast.KindNumber, guardast.KindString}, cfg.Kinds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GUARDGEN_SOURCE", "env/guards.ts")
	t.Setenv("GUARDGEN_PACKAGE", "envguards")
	t.Setenv("GUARDGEN_DIALECT", "tsx")

	cfg, err := LoadConfig(writeConfig(t, "source: file/guards.ts\n"))
	require.NoError(t, err)
	assert.Equal(t, "env/guards.ts", cfg.Source)
	assert.Equal(t, "envguards", cfg.Package)
	assert.Equal(t, "tsx", cfg.Dialect)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "source: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("Bad package", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "package: 9lives\n"))
		assert.ErrorContains(t, err, "not a valid Go identifier")
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty source", func(c *Config) { c.Source = " " }, "source path is empty"},
		{"empty output", func(c *Config) { c.Output = "" }, "output path is empty"},
		{"bad dialect", func(c *Config) { c.Dialect = "flow" }, `unsupported dialect "flow"`},
		{"empty import", func(c *Config) { c.ASTImport = "" }, "ast_import is empty"},
		{"no kinds", func(c *Config) { c.Kinds = nil }, "at least one kind"},
		{"blank kind", func(c *Config) { c.Kinds = []guardast.Kind{""} }, "empty kind"},
		{"duplicate kind", func(c *Config) {
			c.Kinds = []guardast.Kind{guardast.KindString, guardast.KindString}
		}, `kind "string" listed twice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errMsg)
			assert.NotContains(t, err.Error(), "config:", "callers add the stage prefix")
		})
	}
}
