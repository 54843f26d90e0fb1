package cmd

import (
	"habitd/internal/apiclient"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <habit-id>",
	Short: "Toggle a habit's completion for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := apiclient.New(cfg.APIBaseURL)
		completed, err := client.ToggleHabit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if completed {
			cmd.Println("Marked done")
		} else {
			cmd.Println("Marked not done")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
