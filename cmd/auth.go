package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"simpletools/internal/config"
	"simpletools/internal/creds"
	"simpletools/internal/simpletools"
)

var (
	authUserID     string
	authConfigPath string
)

// EmptyInputError marks an interactive flow aborted because the user
// submitted empty input. Execute maps it to ExitCodeEmptyInput so scripts
// can tell "declined to enter a key" from real failures.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "API key cannot be empty"
}

// authCmd represents the auth command group.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Store the Simple Tools API key for a user",
	Long: `Prompts for a Simple Tools API key and stores it locally, so the
server can authenticate tool calls for that user.

The key is read without echo and written to
~/.config/simpletools/credentials/simple-tools/<user>_credentials.json
(0600). It never leaves this machine.

Examples:
  simpletools auth                   # Store a key for the default user
  simpletools auth --user-id alice   # Store a key for a specific user
  simpletools auth status            # Show locally stored credentials`,
	Args: cobra.NoArgs,
	RunE: runAuth,
}

func runAuth(cmd *cobra.Command, args []string) error {
	fileStore, err := authFileStore()
	if err != nil {
		return err
	}

	apiKey, err := promptForAPIKey()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Saving credentials..."
	s.Start()

	err = fileStore.Save(ctx, simpletools.ServiceName, authUserID, creds.Credentials{APIKey: apiKey})
	if err == nil {
		// Read back before confirming; a save that cannot be read back
		// would only surface at the first tool call.
		_, err = fileStore.Get(ctx, simpletools.ServiceName, authUserID)
	}
	s.Stop()

	if err != nil {
		fmt.Println(text.FgRed.Sprint("Failed to save credentials"))
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	fmt.Printf("%s Simple Tools API key saved for user %s. You can now run the server.\n",
		text.FgGreen.Sprint("✓"), authUserID)
	return nil
}

// promptForAPIKey reads the key from the terminal without echoing it.
func promptForAPIKey() (string, error) {
	line, err := readline.Password("Please enter your Simple Tools API key: ")
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(line))
	if apiKey == "" {
		return "", &EmptyInputError{}
	}
	return apiKey, nil
}

// authFileStore opens the file-backed credential store the auth commands
// operate on. Auth is always local; the hosted service manages its own
// keys.
func authFileStore() (*creds.FileStore, error) {
	configPath := authConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	fileStore, err := creds.NewFileStore(cfg.Credentials.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	return fileStore, nil
}

func init() {
	rootCmd.AddCommand(authCmd)

	authCmd.PersistentFlags().StringVar(&authUserID, "user-id", simpletools.DefaultUserID, "User to store credentials for")
	authCmd.PersistentFlags().StringVar(&authConfigPath, "config-path", "", "Custom configuration directory path")
}
