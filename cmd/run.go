package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/versemind/internal/app"
	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	lib, err := newLibrary()
	if err != nil {
		return fmt.Errorf("resolve deck dir: %w", err)
	}

	rec := progress.NewReconciler(ctx, st.ProgressRepo(), ProgressNamespace)

	return app.Run(app.Options{
		Source:      lib,
		Reconciler:  rec,
		Translation: resolveTranslation(cmd),
	})
}
