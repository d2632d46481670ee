package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newVersionCmd creates the Cobra command for displaying the application version.
// The actual version information is managed by the root command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of simpletools",
		Long:  `All software has versions. This is simpletools'.`,
		Run: func(cmd *cobra.Command, args []string) {
			// rootCmd.Version is set by main.go at build time.
			fmt.Fprintf(cmd.OutOrStdout(), "simpletools version %s\n", rootCmd.Version)
		},
	}
}
