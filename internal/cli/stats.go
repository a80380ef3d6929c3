// ABOUTME: Stats command summarizing all stored readings
// ABOUTME: Prints min, average, and max per field plus the date range
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/harper/bloodpressure/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize all recorded readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		readings, err := s.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load readings: %w", err)
		}
		if len(readings) == 0 {
			return fmt.Errorf("no readings recorded")
		}

		first, last := readings[0].Timestamp, readings[0].Timestamp
		for _, r := range readings[1:] {
			if r.Timestamp.Before(first) {
				first = r.Timestamp
			}
			if r.Timestamp.After(last) {
				last = r.Timestamp
			}
		}

		out := cmd.OutOrStdout()
		heading := color.New(color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s\n", heading(fmt.Sprintf("%d readings, %s to %s",
			len(readings),
			first.Local().Format("2006-01-02"),
			last.Local().Format("2006-01-02"))))

		printFieldStats(out, "Systolic", readings, func(r store.Reading) uint32 { return r.Systolic })
		printFieldStats(out, "Diastolic", readings, func(r store.Reading) uint32 { return r.Diastolic })
		printFieldStats(out, "Pulse", readings, func(r store.Reading) uint32 { return r.Pulse })
		return nil
	},
}

func printFieldStats(out io.Writer, name string, readings []store.Reading, field func(store.Reading) uint32) {
	minVal, maxVal := field(readings[0]), field(readings[0])
	var sum uint64
	for _, r := range readings {
		v := field(r)
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
		sum += uint64(v)
	}
	avg := float64(sum) / float64(len(readings))
	fmt.Fprintf(out, "%s:\tmin %d\tavg %.1f\tmax %d\n", name, minVal, avg, maxVal)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
