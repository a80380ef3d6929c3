// ABOUTME: Show-path command for printing the backing-file location
// ABOUTME: Resolves the path without touching any data
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showPathCmd = &cobra.Command{
	Use:   "show-path",
	Short: "Print the data file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Data Path: %s\n", s.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showPathCmd)
}
