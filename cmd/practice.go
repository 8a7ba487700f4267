package cmd

import (
	"github.com/Mr-Gerald/graceful-path-web/internal/app"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Take practice tests in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

// runPractice opens the store and launches the TUI test player.
func runPractice(cmd *cobra.Command) error {
	premium, _ := cmd.Flags().GetBool("premium")

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(st.Tests(), premium)
}

func init() {
	practiceCmd.Flags().Bool("premium", false, "Run with a premium entitlement (no free-tier question limit)")
	rootCmd.Flags().Bool("premium", false, "Run with a premium entitlement (no free-tier question limit)")
}
