package cmd

import (
	"os"

	"habitd/internal/config"
	"habitd/internal/logger"

	"github.com/spf13/cobra"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "habitd",
	Short: "Track recurring habits and daily completion",
	Long: `
	Habitd tracks recurring habits: define a habit once with the weekdays it
	recurs on, then mark it done or not done per day. The server exposes an
	HTTP JSON API; the other commands are thin clients against it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger.Setup(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
