// Package config loads the TOML settings of the regexast command.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Formats accepted by Output.Format.
var Formats = []string{"tree", "notation", "yaml", "json", "dot", "pattern"}

// Config holds the settings of the regexast command.
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Output OutputConfig `toml:"output"`
	Batch  BatchConfig  `toml:"batch"`
}

// ParseConfig controls the parser.
type ParseConfig struct {
	MaxDepth int `toml:"max_depth"` // 0 = unlimited
}

// OutputConfig controls how trees are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// BatchConfig controls the batch command.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML file. An empty path returns the defaults; keys the file
// leaves out keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "tree"
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = 4
	}
}

// Validate checks value ranges and the output format name.
func (c *Config) Validate() error {
	if c.Parse.MaxDepth < 0 {
		return fmt.Errorf("parse.max_depth must be >= 0, got %d", c.Parse.MaxDepth)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers)
	}
	if !ValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %v", c.Output.Format, Formats)
	}
	return nil
}

// ValidFormat reports whether name is one of Formats.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}
