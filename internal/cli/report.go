// ABOUTME: Report command for displaying recent readings
// ABOUTME: Supports limit, date range filters, and JSON output
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/harper/bloodpressure/internal/store"
	"github.com/spf13/cobra"
)

var (
	reportLimit      int
	reportSince      string
	reportUntil      string
	reportJSONOutput bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report the most recent readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		params := store.SearchParams{Limit: reportLimit}

		if reportSince != "" {
			since, err := dateparse.ParseAny(reportSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			params.Since = &since
		}
		if reportUntil != "" {
			until, err := dateparse.ParseAny(reportUntil)
			if err != nil {
				return fmt.Errorf("invalid --until date: %w", err)
			}
			params.Until = &until
		}

		readings, err := s.Search(params)
		if err != nil {
			return fmt.Errorf("failed to report readings: %w", err)
		}
		// Search treats a non-positive limit as "no truncation"; the
		// command takes the flag literally, so clamp after loading to
		// keep the missing-file error for degenerate limits.
		if reportLimit < 0 {
			reportLimit = 0
		}
		if len(readings) > reportLimit {
			readings = readings[:reportLimit]
		}

		if reportJSONOutput {
			data, err := json.MarshalIndent(readings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		for _, r := range readings {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", 10, "Number of readings to show")
	reportCmd.Flags().StringVar(&reportSince, "since", "", "Start date (natural language or ISO)")
	reportCmd.Flags().StringVar(&reportUntil, "until", "", "End date (natural language or ISO)")
	reportCmd.Flags().BoolVar(&reportJSONOutput, "json", false, "Output as JSON")
	rootCmd.AddCommand(reportCmd)
}
