package config

import (
	"errors"
	"strings"

	"github.com/leapstack-labs/uirename/internal/cli/output"
)

// Validate checks the settings and normalizes the output format.
func (c *Config) Validate() error {
	c.Dir = strings.TrimSpace(c.Dir)
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}

	mode, err := output.ParseMode(c.OutputFormat)
	if err != nil {
		return err
	}
	c.OutputFormat = string(mode)
	return nil
}
