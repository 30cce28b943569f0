// Package config loads cellstate.yml (or cellstate.toml) and exposes
// tool-specific sections through UnmarshalExtension. Only the version
// and theme keys are interpreted here; everything else is kept as an
// opaque extension map so packages like logging and producer can own
// their own section schemas.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/tabulab/cellstate/errors"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// Config is a parsed cellstate configuration file.
type Config struct {
	// Version is the config schema version string.
	Version string `yaml:"version" toml:"version"`

	// Theme selects the TUI color theme ("kanagawa", "terminal").
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Extensions holds every top-level key not interpreted above,
	// decoded on demand via UnmarshalExtension.
	Extensions map[string]interface{} `yaml:"-" toml:"-"`
}

// Load reads and parses a configuration file. The format is chosen by
// file extension; anything that is not .toml is parsed as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadFromTOMLBytes(data)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses YAML configuration data.
func LoadFromBytes(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(expandEnvVars(data), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML config")
	}
	return fromRaw(raw)
}

// LoadFromTOMLBytes parses TOML configuration data.
func LoadFromTOMLBytes(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(expandEnvVars(data), &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML config")
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]interface{}) (*Config, error) {
	cfg := &Config{Extensions: make(map[string]interface{})}
	for key, value := range raw {
		switch key {
		case "version":
			if s, ok := value.(string); ok {
				cfg.Version = s
			}
		case "theme":
			if s, ok := value.(string); ok {
				cfg.Theme = s
			}
		default:
			cfg.Extensions[key] = value
		}
	}
	return cfg, nil
}

// UnmarshalExtension decodes a top-level extension section into out.
// A missing section is not an error; out is left untouched.
func (c *Config) UnmarshalExtension(key string, out interface{}) error {
	raw, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to create extension decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode extension").
			WithDetail("extension", key)
	}
	return nil
}

// LoadDefault finds and loads the nearest configuration file, walking
// up from the current working directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	path, err := FindConfigFile(cwd)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// FindConfigFile walks up from startDir looking for cellstate.yml,
// cellstate.yaml, or cellstate.toml, in that preference order per
// directory.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range []string{"cellstate.yml", "cellstate.yaml", "cellstate.toml"} {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.ConfigNotFound(filepath.Join(startDir, "cellstate.yml"))
		}
		dir = parent
	}
}

// expandEnvVars substitutes ${VAR} references with environment values.
// Unset variables expand to the empty string.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		name := string(match[2 : len(match)-1])
		return []byte(os.Getenv(name))
	})
}
