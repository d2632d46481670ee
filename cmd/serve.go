package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"simpletools/internal/app"
)

var (
	serveDebug      bool
	serveSilent     bool
	serveConfigPath string
	serveTransport  string
	serveHost       string
	servePort       int
	serveUserID     string
)

// serveCmd starts the MCP server. This is the long-running mode of
// simpletools; every other command returns immediately.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the simpletools MCP server",
	Long: `Starts the simpletools MCP server and blocks until interrupted.

Transports:
  stdio            Serve on stdin/stdout (default). For MCP clients that
                   spawn the server as a child process. All logging goes
                   to stderr so the protocol stream stays clean.
  sse              Serve HTTP with Server-Sent Events on --host:--port.
  streamable-http  Serve the streamable HTTP transport on --host:--port.

Every tool call is attributed to a single configured user (--user-id,
default "local") and requires that user's API key to be stored; run
'simpletools auth' first.

Configuration is read from config.yaml under ~/.config/simpletools (or
--config-path), with environment variables and flags taking precedence.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveSilent, serveConfigPath)
	cfg.Transport = serveTransport
	cfg.Host = serveHost
	cfg.Port = servePort
	cfg.UserID = serveUserID

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport to serve on: stdio, sse or streamable-http (overrides config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to for HTTP transports (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port for HTTP transports (overrides config)")
	serveCmd.Flags().StringVar(&serveUserID, "user-id", "", "User attributed to incoming tool calls (overrides config)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveSilent, "silent", false, "Suppress all log output")
}
