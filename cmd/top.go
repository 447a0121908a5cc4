package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ychsiao/tablerush/internal/leaderboard"
)

var (
	topDifficulty string
	topMode       string
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the leaderboard for a difficulty and mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		boards := leaderboard.NewService(st.ScoreRepo())
		entries, err := boards.Top(cmd.Context(), topDifficulty, topMode)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}

		if len(entries) == 0 {
			fmt.Printf("No entries yet for %s / %s.\n", topDifficulty, topMode)
			return nil
		}

		fmt.Printf("Top %d — %s / %s\n\n", leaderboard.BoardSize, topDifficulty, topMode)
		printEntries(entries, true)
		return nil
	},
}

func init() {
	topCmd.Flags().StringVarP(&topDifficulty, "difficulty", "d", "Normal", "Difficulty board (Easy, Normal, Hard)")
	topCmd.Flags().StringVarP(&topMode, "mode", "m", "basic", "Question mode board (basic, narrative)")
}

// printEntries writes a leaderboard table to stdout. When ranked is
// true the first column is the board position.
func printEntries(entries []leaderboard.Entry, ranked bool) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	if ranked {
		fmt.Fprintln(w, "#\tNAME\tSCORE\tTIME\tDATE")
		for i, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%d\t%ds\t%s\n",
				i+1, e.Name, e.Score, e.TimeUsed, e.Timestamp.Format("2006-01-02"))
		}
	} else {
		fmt.Fprintln(w, "NAME\tSCORE\tTIME\tBOARD\tDATE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%ds\t%s/%s\t%s\n",
				e.Name, e.Score, e.TimeUsed, e.Difficulty, e.Mode, e.Timestamp.Format("2006-01-02"))
		}
	}
	_ = w.Flush()
}
