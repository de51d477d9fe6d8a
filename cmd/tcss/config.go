package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration of the CLI, read from a YAML file:
//
//	trace: info
//	defaults: false
//	width: 100
//	height: 30
type Config struct {
	Trace    string `yaml:"trace"`
	Defaults *bool  `yaml:"defaults"` // resolve registry defaults, default true
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
}

// DefaultConfig returns the configuration used without a configuration file.
func DefaultConfig() Config {
	return Config{Trace: "error", Width: 80, Height: 24}
}

// WithDefaults reports whether registry defaults are resolved.
func (c Config) WithDefaults() bool {
	return c.Defaults == nil || *c.Defaults
}

// LoadConfig reads a configuration file. Settings missing from the file
// keep their default values. An empty path yields the default configuration.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()
	if path == "" {
		return conf, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("cannot read configuration: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&conf); err != nil {
		return conf, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	if conf.Width <= 0 || conf.Height <= 0 {
		return conf, fmt.Errorf("invalid configuration %s: screen size must be positive", path)
	}
	return conf, nil
}
