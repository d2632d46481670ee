package app

import (
	"simpletools/internal/config"
)

// Config carries the CLI-level settings into the bootstrap. Flag overrides
// are zero-valued when the user did not pass them; ApplyOverrides only
// copies the ones that were.
type Config struct {
	// Debug enables verbose logging output.
	Debug bool

	// Silent suppresses all log output. The protocol stream is unaffected.
	Silent bool

	// ConfigPath is the configuration directory. Empty selects
	// ~/.config/simpletools.
	ConfigPath string

	// Transport, Host, Port and UserID override the loaded file values
	// when non-zero.
	Transport string
	Host      string
	Port      int
	UserID    string

	// FileConfig is the loaded configuration, populated during bootstrap.
	FileConfig *config.Config
}

// NewConfig creates an application configuration from the common flags.
func NewConfig(debug, silent bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigPath: configPath,
	}
}

// ApplyOverrides copies the set flag values over the file configuration.
func (c *Config) ApplyOverrides(fileConfig *config.Config) {
	if c.Transport != "" {
		fileConfig.Server.Transport = c.Transport
	}
	if c.Host != "" {
		fileConfig.Server.Host = c.Host
	}
	if c.Port != 0 {
		fileConfig.Server.Port = c.Port
	}
	if c.UserID != "" {
		fileConfig.Server.UserID = c.UserID
	}
}
