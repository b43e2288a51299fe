package cmd

import (
	"fmt"

	"github.com/keepsake-care/keepsake/internal/app"
	"github.com/keepsake-care/keepsake/internal/media"
	"github.com/keepsake-care/keepsake/internal/progress"
	"github.com/keepsake-care/keepsake/internal/rewards"
	"github.com/keepsake-care/keepsake/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	mediaDir, err := resolveMediaDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve media dir: %w", err)
	}

	opts := app.Options{
		Store:    st,
		Hearts:   rewards.NewService(st.EventRepo()),
		Progress: progress.NewService(st.ProgressRepo()),
		Media:    media.NewResolver(mediaDir),
	}
	return app.Run(opts)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func resolveMediaDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("media"); p != "" {
		return p, nil
	}
	return media.DefaultMediaDir()
}
