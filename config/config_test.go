package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/cellstate/errors"
)

func TestLoadFromBytes(t *testing.T) {
	data := []byte(`
version: "1.0"
theme: kanagawa

logging:
  level: debug
  format:
    preset: simple

rules:
  columns:
    Date:
      type: date
`)
	cfg, err := LoadFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "kanagawa", cfg.Theme)
	assert.Contains(t, cfg.Extensions, "logging")
	assert.Contains(t, cfg.Extensions, "rules")

	var logCfg struct {
		Level  string `yaml:"level"`
		Format struct {
			Preset string `yaml:"preset"`
		} `yaml:"format"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "debug", logCfg.Level)
	assert.Equal(t, "simple", logCfg.Format.Preset)
}

func TestUnmarshalExtensionMissingKeyIsNoop(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(`version: "1.0"`))
	require.NoError(t, err)

	var out struct {
		Level string `yaml:"level"`
	}
	out.Level = "untouched"
	require.NoError(t, cfg.UnmarshalExtension("logging", &out))
	assert.Equal(t, "untouched", out.Level)
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cellstate.toml")
	data := `
version = "1.0"
theme = "terminal"

[logging]
level = "warn"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Theme)

	var logCfg struct {
		Level string `yaml:"level"`
	}
	require.NoError(t, cfg.UnmarshalExtension("logging", &logCfg))
	assert.Equal(t, "warn", logCfg.Level)
}

func TestEnvVarExpansion(t *testing.T) {
	t.Setenv("CELLSTATE_TEST_THEME", "gruvbox")
	cfg, err := LoadFromBytes([]byte("version: \"1.0\"\ntheme: ${CELLSTATE_TEST_THEME}\n"))
	require.NoError(t, err)
	assert.Equal(t, "gruvbox", cfg.Theme)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "cellstate.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}

func TestFindConfigFileWalksUp(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "cellstate.yml"), []byte(`version: "1.0"`), 0644))

	path, err := FindConfigFile(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "cellstate.yml"), path)
}

func TestFindConfigFileNotFound(t *testing.T) {
	_, err := FindConfigFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeConfigNotFound))
}
