package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/leapstack-labs/spfxcheck/pkg/report"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("invalid output setting: %w", err)
	}
	for _, id := range c.DisabledRules {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("disabled_rules contains an empty rule ID")
		}
	}
	return nil
}

// ValidateDirectories checks that an explicitly configured project directory
// exists.
func (c *Config) ValidateDirectories() error {
	if c.ProjectDir == "" {
		return nil
	}
	info, err := os.Stat(c.ProjectDir)
	if err != nil {
		return fmt.Errorf("project directory does not exist: %s\nHint: use --project-dir to point at an SPFx project", c.ProjectDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("project directory is not a directory: %s", c.ProjectDir)
	}
	return nil
}
