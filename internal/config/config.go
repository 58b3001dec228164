package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Override is one git configuration override applied to every commit,
// forwarded as "-c key=value". A list preserves the order overrides are
// passed to git.
type Override struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type Config struct {
	// DefaultType is the commit type assumed when -t is omitted.
	DefaultType string `yaml:"default_type"`
	// DefaultPath is the working directory used when -p is omitted.
	// Empty means the current directory.
	DefaultPath string `yaml:"default_path"`
	// Overrides are forwarded to every commit invocation, before any
	// overrides given on the command line.
	Overrides []Override `yaml:"overrides"`
}

func DefaultConfig() *Config {
	return &Config{
		DefaultType: "",
		DefaultPath: "",
		Overrides:   nil,
	}
}

func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".gitorade", "config.yaml")
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := ConfigPath()
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

	return cfg, nil
}

func (c *Config) Save() error {
	path := ConfigPath()

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
