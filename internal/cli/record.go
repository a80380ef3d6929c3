// ABOUTME: Record command for appending a new reading
// ABOUTME: Takes systolic, diastolic, and pulse flags
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harper/bloodpressure/internal/store"
	"github.com/spf13/cobra"
)

var (
	recordTop    uint32
	recordBottom uint32
	recordPulse  uint32
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a blood pressure reading",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		r := store.NewReading(recordTop, recordBottom, recordPulse)
		if err := s.Append(r); err != nil {
			return fmt.Errorf("failed to record reading: %w", err)
		}

		color.Green("Recorded BP %d/%d, pulse %d", r.Systolic, r.Diastolic, r.Pulse)
		return nil
	},
}

func init() {
	recordCmd.Flags().Uint32Var(&recordTop, "top", 0, "Systolic pressure")
	recordCmd.Flags().Uint32Var(&recordBottom, "bottom", 0, "Diastolic pressure")
	recordCmd.Flags().Uint32Var(&recordPulse, "pulse", 0, "Pulse in bpm")
	_ = recordCmd.MarkFlagRequired("top")
	_ = recordCmd.MarkFlagRequired("bottom")
	_ = recordCmd.MarkFlagRequired("pulse")
	rootCmd.AddCommand(recordCmd)
}
