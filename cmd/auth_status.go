package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"simpletools/internal/simpletools"
)

// authStatusCmd shows which users have credentials stored locally.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show locally stored credentials",
	Long: `Lists the users with a Simple Tools API key stored locally, with
the key masked and the time it was last written.

Examples:
  simpletools auth status`,
	Args: cobra.NoArgs,
	RunE: runAuthStatus,
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	fileStore, err := authFileStore()
	if err != nil {
		return err
	}

	users, err := fileStore.Users(simpletools.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to list credentials: %w", err)
	}

	if len(users) == 0 {
		fmt.Printf("%s\n", text.FgYellow.Sprint("No credentials stored. Run 'simpletools auth' first."))
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"USER", "API KEY", "UPDATED", "STATUS"})

	for _, userID := range users {
		maskedKey := "-"
		status := text.FgGreen.Sprint("OK")

		credentials, err := fileStore.Get(ctx, simpletools.ServiceName, userID)
		switch {
		case err != nil:
			status = text.FgRed.Sprint("Unreadable")
		case credentials.Empty():
			status = text.FgYellow.Sprint("Empty")
		default:
			maskedKey = maskAPIKey(credentials.APIKey)
		}

		updated := "-"
		if info, err := os.Stat(fileStore.Path(simpletools.ServiceName, userID)); err == nil {
			updated = info.ModTime().Format("2006-01-02 15:04:05")
		}

		t.AppendRow(table.Row{userID, maskedKey, updated, status})
	}

	t.Render()
	return nil
}

// maskAPIKey keeps enough of the key to recognize it without exposing it.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", 4) + key[len(key)-4:]
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}
