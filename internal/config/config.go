// Package config loads the optional .centra.yaml file that supplies
// run defaults. Command-line flags always win over file values.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// ConfigFileName is the configuration file looked up in the working directory.
const ConfigFileName = ".centra.yaml"

// Config is the main configuration structure for centra.
type Config struct {
	// Solution is the default solution file path.
	Solution string `yaml:"solution,omitempty"`

	// BuildProps overrides where the build-property artifact is written.
	BuildProps string `yaml:"props,omitempty"`

	// Packages overrides where the package-version manifest is written.
	Packages string `yaml:"packages,omitempty"`

	// Sort is the manifest entry ordering: "name" or "discovery".
	Sort string `yaml:"sort,omitempty"`

	// Backup enables pre-mutation .bak copies of rewritten projects.
	Backup bool `yaml:"backup,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{Sort: "name"}
}

// Load reads .centra.yaml from the working directory. A missing file is not
// an error and yields the defaults; a malformed one is.
func Load() (*Config, error) {
	return LoadFrom(ConfigFileName)
}

// LoadFrom reads configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.Sort == "" {
		cfg.Sort = "name"
	}
	return cfg, nil
}
