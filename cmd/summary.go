package cmd

import (
	"habitd/internal/apiclient"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-day completion counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := apiclient.New(cfg.APIBaseURL)
		entries, err := client.Summary(cmd.Context())
		if err != nil {
			return err
		}
		for _, e := range entries {
			cmd.Printf("%s  %.0f/%.0f\n", e.Date, e.Completed, e.Amount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
