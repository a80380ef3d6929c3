// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles command initialization and store wiring
package cli

import (
	"github.com/harper/bloodpressure/internal/config"
	"github.com/harper/bloodpressure/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloodpressure",
	Short: "Record and report my blood pressure",
	Long:  `Bloodpressure records timestamped blood pressure and pulse readings to a local CSV file and reports the most recent ones.`,
}

func Execute() error {
	return rootCmd.Execute()
}

// openStore resolves the backing-file path from config and returns a
// store over it. No file access happens here.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	_, dataPath, err := cfg.DataPaths()
	if err != nil {
		return nil, err
	}
	return store.New(dataPath), nil
}
