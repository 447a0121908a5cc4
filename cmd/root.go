package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ychsiao/tablerush/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tablerush",
	Short: "Multiplication table speed quiz for the terminal",
	Long:  "TableRush — race the clock through multiplication tables and climb the local leaderboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TABLERUSH_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then TABLERUSH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store. Callers own Close.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
