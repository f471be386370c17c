// Package config provides configuration management for the spfxcheck CLI.
//
// Settings are layered, highest precedence first: command-line flags,
// SPFXCHECK_* environment variables, the .spfxcheck.yaml file and built-in
// defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	ProjectDir    string   `koanf:"project_dir"`
	To            string   `koanf:"to"`
	Output        string   `koanf:"output"`
	Verbose       bool     `koanf:"verbose"`
	DisabledRules []string `koanf:"disabled_rules"`

	// ConfigFile is the configuration file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	ConfigFileName = ".spfxcheck.yaml"
	EnvPrefix      = "SPFXCHECK_"
	DefaultOutput  = "text"
)

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{Output: DefaultOutput}
}

// DisabledRuleSet returns the disabled rule IDs as a set.
func (c *Config) DisabledRuleSet() map[string]bool {
	set := make(map[string]bool, len(c.DisabledRules))
	for _, id := range c.DisabledRules {
		set[id] = true
	}
	return set
}
