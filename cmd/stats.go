package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		runs := st.RunRepo()
		stats, err := runs.Stats(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Runs == 0 {
			fmt.Println("No runs recorded yet. Start one with: tablerush play")
			return nil
		}

		fmt.Printf("Runs:         %d\n", stats.Runs)
		fmt.Printf("Perfect runs: %d\n", stats.PerfectRuns)
		fmt.Printf("Best score:   %d\n", stats.BestScore)
		fmt.Printf("Accuracy:     %.0f%% (%d/%d)\n", stats.Accuracy()*100, stats.Correct, stats.Attempts)

		recent, err := runs.Recent(cmd.Context(), statsRecent)
		if err != nil {
			return fmt.Errorf("load recent runs: %w", err)
		}
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent runs:")
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tBOARD\tSCORE\tATTEMPTS\tTIME")
		for _, r := range recent {
			mark := ""
			if r.Perfect {
				mark = " *"
			}
			fmt.Fprintf(w, "%s\t%s/%s\t%d%s\t%d\t%ds\n",
				r.Timestamp.Format("2006-01-02 15:04"), r.Difficulty, r.Mode,
				r.Score, mark, r.Attempts, r.TimeUsed)
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsRecent, "recent", "n", 10, "How many recent runs to list")
}
