package cmd

import (
	"time"

	"habitd/internal/apiclient"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day [date]",
	Short: "Show possible and completed habits for a day",
	Long: `Shows every habit scheduled for the given date (YYYY-MM-DD,
defaulting to today) and which of them are marked done.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now().UTC().Format("2006-01-02")
		if len(args) == 1 {
			date = args[0]
		}

		client := apiclient.New(cfg.APIBaseURL)
		summary, err := client.Day(cmd.Context(), date)
		if err != nil {
			return err
		}

		done := map[string]bool{}
		for _, id := range summary.CompletedHabits {
			done[id] = true
		}

		cmd.Printf("%s\n", date)
		for _, h := range summary.PossibleHabits {
			mark := " "
			if done[h.ID] {
				mark = "x"
			}
			cmd.Printf("  [%s] %s (%s)\n", mark, h.Title, h.ID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
}
