// Package logging provides structured logging for simpletools, built on Go's
// standard slog package.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// # Usage
//
//	import "simpletools/pkg/logging"
//
//	// Initialize once at startup; stderr keeps stdout free for the
//	// stdio MCP transport.
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("ConfigLoader", "Loaded configuration from %s", configPath)
//	logging.Error("Server", err, "Tool %s failed", toolName)
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering:
//
//   - **App** / **Bootstrap**: Application wiring, startup and shutdown
//   - **ConfigLoader**: Configuration loading and validation
//   - **Server**: MCP server lifecycle and transports
//   - **SimpleTools**: Tool dispatch and result shaping
//   - **CredsHTTP** / **CredsWatcher**: Credential store operations
//   - **Store**: Per-user key-value store
//
// Level filtering happens at the handler, so filtered-out messages cost no
// allocation. Logging is safe for concurrent use from multiple goroutines.
package logging
