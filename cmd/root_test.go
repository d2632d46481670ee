package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	// Test setting version
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}

	if GetVersion() != testVersion {
		t.Errorf("Expected GetVersion to return %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	// Test root command properties
	if rootCmd.Use != "simpletools" {
		t.Errorf("Expected Use to be 'simpletools', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	// Create a new command to test version template
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Set the same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "simpletools version %s\n" .Version}}`)

	// Capture output
	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	// Execute version command
	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "simpletools version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	// Test that subcommands are added
	commands := rootCmd.Commands()

	expectedCommands := []string{"version", "self-update", "serve", "auth"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestGetExitCode(t *testing.T) {
	// Test exit code mapping for error types
	if code := getExitCode(&EmptyInputError{}); code != ExitCodeEmptyInput {
		t.Errorf("Expected exit code %d for empty input, got %d", ExitCodeEmptyInput, code)
	}

	// Wrapped empty-input errors should still map to the same exit code
	wrapped := fmt.Errorf("auth failed: %w", &EmptyInputError{})
	if code := getExitCode(wrapped); code != ExitCodeEmptyInput {
		t.Errorf("Expected exit code %d for wrapped empty input, got %d", ExitCodeEmptyInput, code)
	}

	if code := getExitCode(errors.New("boom")); code != ExitCodeError {
		t.Errorf("Expected exit code %d for generic error, got %d", ExitCodeError, code)
	}
}

func TestRootCommandHelp(t *testing.T) {
	// Test that help can be generated without error
	var buf bytes.Buffer

	// Create a new command to avoid affecting the global one
	testRootCmd := &cobra.Command{
		Use:   "simpletools",
		Short: "A per-user key-value store exposed over MCP",
		Long: `simpletools is a small MCP server: three tools (store_data,
retrieve_data, list_data) over an in-memory per-user key-value store,
gated behind a per-user API key.`,
		SilenceUsage: true,
	}

	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})

	err := testRootCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "simpletools") {
		t.Errorf("Help output should contain 'simpletools'. Got: %q", output)
	}

	if !strings.Contains(output, "key-value store") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}
}
