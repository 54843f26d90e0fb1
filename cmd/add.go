package cmd

import (
	"habitd/internal/apiclient"

	"github.com/spf13/cobra"
)

var addWeekDays []int

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new habit",
	Long: `Creates a habit with the given title, scheduled for the weekdays
passed via --days (0=Sunday through 6=Saturday).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := apiclient.New(cfg.APIBaseURL)
		h, err := client.CreateHabit(cmd.Context(), args[0], addWeekDays)
		if err != nil {
			return err
		}
		cmd.Printf("Created habit %s (%s)\n", h.Title, h.ID)
		return nil
	},
}

func init() {
	addCmd.Flags().IntSliceVar(&addWeekDays, "days", []int{0, 1, 2, 3, 4, 5, 6},
		"weekdays the habit recurs on, 0=Sunday..6=Saturday")
	rootCmd.AddCommand(addCmd)
}
