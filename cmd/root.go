package cmd

import (
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keepsake",
	Short: "Memory companion for people living with memory loss",
	Long:  "Keepsake — a terminal companion that turns a family's photos and stories into gentle recall quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KEEPSAKE_DB env var)")
	rootCmd.PersistentFlags().String("media", "", "Path to the media directory (overrides KEEPSAKE_MEDIA env var)")

	rootCmd.AddCommand(peopleCmd)
	rootCmd.AddCommand(memoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then the KEEPSAKE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
