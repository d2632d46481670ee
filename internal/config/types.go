package config

import (
	"fmt"
	"time"
)

const (
	// TransportStreamableHTTP is the streamable HTTP transport.
	TransportStreamableHTTP = "streamable-http"
	// TransportSSE is the Server-Sent Events transport.
	TransportSSE = "sse"
	// TransportStdio is the standard I/O transport.
	TransportStdio = "stdio"
)

// EnvironmentLocal is the deployment environment for local development. It
// selects the file-backed credential store and the "run authentication
// first" hint on auth errors.
const EnvironmentLocal = "local"

// Config is the top-level configuration structure for simpletools.
type Config struct {
	Server      ServerConfig      `yaml:"server,omitempty"`
	Environment string            `yaml:"environment,omitempty"` // Deployment environment (default: local)
	Credentials CredentialsConfig `yaml:"credentials,omitempty"`
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // Transport to use: stdio, sse or streamable-http (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind to for HTTP transports (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port for HTTP transports (default: 8090)
	UserID    string `yaml:"userID,omitempty"`    // User attributed to incoming tool calls (default: local)
}

// CredentialsConfig defines where API keys are resolved from.
type CredentialsConfig struct {
	Backend    string        `yaml:"backend,omitempty"`    // "local", "remote" or empty to derive from environment
	Dir        string        `yaml:"dir,omitempty"`        // Base directory for the file store (default: ~/.config/simpletools/credentials)
	APIBaseURL string        `yaml:"apiBaseURL,omitempty"` // Base URL of the hosted credential service
	APIKey     string        `yaml:"apiKey,omitempty"`     // Bearer token for the hosted credential service
	CacheTTL   time.Duration `yaml:"cacheTTL,omitempty"`   // How long resolved credentials are cached (default: 1m)
}

// GetDefaultConfig returns the configuration used when no config.yaml
// exists: a stdio server for the local user with file-backed credentials.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8090,
			UserID:    "local",
		},
		Environment: EnvironmentLocal,
		Credentials: CredentialsConfig{
			CacheTTL: time.Minute,
		},
	}
}

// Validate checks the configuration for values no component can act on.
func (c *Config) Validate() error {
	switch c.Server.Transport {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
	default:
		return fmt.Errorf("unknown transport %q (valid: %s, %s, %s)",
			c.Server.Transport, TransportStdio, TransportSSE, TransportStreamableHTTP)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}

	if c.Server.UserID == "" {
		return fmt.Errorf("server userID must not be empty")
	}

	switch c.Credentials.Backend {
	case "", "local", "remote":
	default:
		return fmt.Errorf("unknown credentials backend %q (valid: local, remote)", c.Credentials.Backend)
	}

	if c.Credentials.CacheTTL < 0 {
		return fmt.Errorf("credentials cacheTTL must not be negative")
	}

	return nil
}
