package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mcdonaldj/filemod/internal/transform"
)

type Config struct {
	Color        bool   `yaml:"color"`
	ShowDiff     bool   `yaml:"show_diff"`
	LogLevel     string `yaml:"log_level"`
	PreviewChars int    `yaml:"preview_chars"`
	Example      struct {
		Input  string `yaml:"input"`
		Output string `yaml:"output"`
	} `yaml:"example"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		Color:        true,
		ShowDiff:     true,
		LogLevel:     "warn",
		PreviewChars: transform.PreviewLimit,
	}
	cfg.Example.Input = "example_input.txt"
	cfg.Example.Output = "example_output.txt"
	return cfg
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".filemod", "config.yaml")
}

// LoadFrom reads the config at path. Fields missing from the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.PreviewChars <= 0 {
		cfg.PreviewChars = transform.PreviewLimit
	}

	return cfg, nil
}

// SaveTo writes the config as YAML to path, creating its directory.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path // Return unexpanded if home unavailable
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
