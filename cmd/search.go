package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ychsiao/tablerush/internal/leaderboard"
)

var (
	searchDifficulty string
	searchMode       string
)

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Find leaderboard entries by player name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		boards := leaderboard.NewService(st.ScoreRepo())
		entries, err := boards.SearchByName(cmd.Context(), args[0], searchDifficulty, searchMode)
		if err != nil {
			return fmt.Errorf("search leaderboard: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No entries matching %q.\n", args[0])
			return nil
		}

		printEntries(entries, false)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchDifficulty, "difficulty", "d", "", "Restrict to one difficulty board")
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "", "Restrict to one question mode")
}
