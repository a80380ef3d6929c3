// ABOUTME: Export command for writing all readings to markdown or JSON
// ABOUTME: Writes to stdout or a file, oldest reading first
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/harper/bloodpressure/internal/export"
	"github.com/harper/bloodpressure/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		// Search with no limit sorts newest first; reverse for export
		readings, err := s.Search(store.SearchParams{})
		if err != nil {
			return fmt.Errorf("failed to load readings: %w", err)
		}
		for i, j := 0, len(readings)-1; i < j; i, j = i+1, j-1 {
			readings[i], readings[j] = readings[j], readings[i]
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() {
				if closeErr := f.Close(); closeErr != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to close output file: %v\n", closeErr)
				}
			}()
			w = f
		}

		if err := export.Write(w, exportFormat, readings); err != nil {
			return fmt.Errorf("failed to export readings: %w", err)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatMarkdown, "Output format (markdown or json)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
