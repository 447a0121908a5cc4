package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ychsiao/tablerush/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a timed quiz run",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func runPlay(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{Store: st})
}
