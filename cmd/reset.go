package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all leaderboard entries and run history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This deletes every leaderboard entry and recorded run.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		scores, err := st.ScoreRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete scores: %w", err)
		}
		runs, err := st.RunRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete runs: %w", err)
		}

		fmt.Printf("Deleted %d leaderboard entries and %d runs.\n", scores, runs)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
