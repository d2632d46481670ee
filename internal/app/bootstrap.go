package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"simpletools/internal/config"
	"simpletools/pkg/logging"
)

// Application bootstraps and runs the simpletools server. Initialization
// happens in two phases: NewApplication loads configuration and wires the
// services, Run serves until a signal or context cancellation.
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates an application: logging first, then configuration
// (defaults, file, environment, flags, in that precedence), then services.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr always: on the stdio transport stdout carries the
	// protocol stream, and mixed output corrupts the session.
	var logOutput io.Writer = os.Stderr
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.InitForCLI(appLogLevel, logOutput)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	fileConfig, err := config.Load(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", configPath)
		return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	cfg.ApplyOverrides(&fileConfig)

	if err := fileConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.FileConfig = &fileConfig

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Run serves until the context is cancelled or a shutdown signal arrives.
func (a *Application) Run(ctx context.Context) error {
	return runServer(ctx, a.services)
}
