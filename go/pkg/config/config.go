// Package config loads service settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is returned for unreadable or malformed config files.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ServiceConfig holds the settings shared by the HTTP services.
type ServiceConfig struct {
	Name string `yaml:"name"`
	Addr string `yaml:"addr"`
}

// Load builds the config for a service. Defaults come first, then the YAML
// file named by <PREFIX>_CONFIG if set, then <PREFIX>_ADDR.
func Load(prefix string, defaults ServiceConfig) (ServiceConfig, error) {
	cfg := defaults
	if path := os.Getenv(prefix + "_CONFIG"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	cfg.LoadFromEnv(prefix)
	return cfg, nil
}

// LoadFile overlays the non-empty values from a YAML file.
func (c *ServiceConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	var file ServiceConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfiguration, path, err)
	}
	if file.Name != "" {
		c.Name = file.Name
	}
	if file.Addr != "" {
		c.Addr = file.Addr
	}
	return nil
}

// LoadFromEnv applies <PREFIX>_NAME and <PREFIX>_ADDR when set.
func (c *ServiceConfig) LoadFromEnv(prefix string) {
	if v := os.Getenv(prefix + "_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv(prefix + "_ADDR"); v != "" {
		c.Addr = v
	}
}

// Banner is the line a service prints when it starts listening.
func (c ServiceConfig) Banner() string {
	return fmt.Sprintf("%s listening on %s", c.Name, c.Addr)
}
