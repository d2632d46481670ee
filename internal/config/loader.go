package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"simpletools/pkg/logging"
)

const (
	userConfigDir  = ".config/simpletools"
	configFileName = "config.yaml"
)

// Environment variables that override file configuration. They exist so
// hosted deployments can configure the process without a config.yaml.
const (
	EnvEnvironment    = "ENVIRONMENT"
	EnvCredentialsDir = "SIMPLETOOLS_CREDENTIALS_DIR"
	EnvAPIBaseURL     = "SIMPLETOOLS_API_BASE_URL"
	EnvAPIKey         = "SIMPLETOOLS_API_KEY"
)

// GetDefaultConfigPathOrPanic returns ~/.config/simpletools. It panics when
// the home directory cannot be determined, which on a usable system it can.
func GetDefaultConfigPathOrPanic() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// Load reads config.yaml from the given directory on top of the defaults.
// A missing file is not an error; the defaults stand. Environment variable
// overrides apply last, so they win over file values.
func Load(configPath string) (Config, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			applyEnvOverrides(&config)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	applyEnvOverrides(&config)
	return config, nil
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv(EnvEnvironment); v != "" {
		config.Environment = v
	}
	if v := os.Getenv(EnvCredentialsDir); v != "" {
		config.Credentials.Dir = v
	}
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		config.Credentials.APIBaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		config.Credentials.APIKey = v
	}
}
