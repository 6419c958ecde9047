package plume

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultRecursionLimit = 1000
	defaultCollectCycles  = 2
)

// Config holds interpreter settings. The zero value of a field selects its default.
type Config struct {
	// RecursionLimit bounds nested calls before a RecursionError is raised.
	RecursionLimit int `yaml:"recursion_limit"`

	// CollectCycles is the number of collector cycles gc.collect() runs.
	CollectCycles int `yaml:"collect_cycles"`

	// LogLevel is read by the command-line tool to build its logger.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the settings used by [New].
func DefaultConfig() Config {
	return Config{
		RecursionLimit: defaultRecursionLimit,
		CollectCycles:  defaultCollectCycles,
		LogLevel:       "warn",
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RecursionLimit <= 0 {
		c.RecursionLimit = d.RecursionLimit
	}
	if c.CollectCycles <= 0 {
		c.CollectCycles = d.CollectCycles
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	return c
}

// ParseConfig decodes a YAML document into a Config with defaults applied.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return c.withDefaults(), nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}
