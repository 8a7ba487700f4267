package cmd

import (
	"fmt"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "graceful",
	Short: "Nursing exam prep platform",
	Long:  "Graceful Path — AI-powered exam preparation for internationally educated nurses: timed practice tests, AI question generation, a clinical tutor, and study plans.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRACEFUL_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRACEFUL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, content.EnsureDir(p)
	}
	return content.DefaultDBPath()
}

// openStore resolves the database path and opens the content store.
func openStore(cmd *cobra.Command) (*content.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := content.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
