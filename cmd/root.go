package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
// These follow common conventions and allow shell scripts to distinguish
// failure modes of the auth flow.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeEmptyInput indicates an interactive flow aborted on empty input.
	ExitCodeEmptyInput = 2
)

// rootCmd represents the base command for the simpletools application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "simpletools",
	Short: "A per-user key-value store exposed over MCP",
	Long: `simpletools is a small MCP server: three tools (store_data,
retrieve_data, list_data) over an in-memory per-user key-value store,
gated behind a per-user API key.

Run 'simpletools auth' once to store your API key, then 'simpletools serve'
to expose the tools on stdio (default), SSE or streamable HTTP.

Invoked without a subcommand, simpletools prints this help and exits; the
server only starts on an explicit 'serve'.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "simpletools version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var emptyInput *EmptyInputError
	if errors.As(err, &emptyInput) {
		return ExitCodeEmptyInput
	}

	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
