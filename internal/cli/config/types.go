// Package config loads runtime settings for the uirename CLI.
//
// Settings are layered with koanf, lowest to highest precedence:
// built-in defaults, UIRENAME_* environment variables, explicitly set flags.
// There is no config file, and the rename table itself is not configurable.
package config

import "github.com/leapstack-labs/uirename/internal/table"

// Config holds all CLI settings.
type Config struct {
	Dir          string `koanf:"dir"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	NoPause      bool   `koanf:"no_pause"`
}

// Default configuration values.
const (
	DefaultDir    = table.DefaultDir
	DefaultOutput = "auto" // TTY=text, otherwise markdown
	EnvPrefix     = "UIRENAME_"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Dir:          DefaultDir,
		OutputFormat: DefaultOutput,
	}
}
