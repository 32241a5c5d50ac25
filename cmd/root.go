package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/versemind/internal/deck"
	"github.com/abhisek/versemind/internal/store"
)

// ProgressNamespace keys the durable record in the store. Injected into
// the reconciler so tests and alternate profiles can use their own.
const ProgressNamespace = "versemind"

var rootCmd = &cobra.Command{
	Use:   "versemind",
	Short: "Terminal Quran memorization trainer",
	Long:  "Versemind reviews surahs verse by verse, Anki style, and keeps your streak alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A local .env can hold VERSEMIND_DB, VERSEMIND_TRANSLATION, and
	// VERSEMIND_API_BASE; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VERSEMIND_DB env var)")
	rootCmd.PersistentFlags().String("translation", "", "Translation edition id (overrides VERSEMIND_TRANSLATION env var)")

	rootCmd.AddCommand(decksCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then VERSEMIND_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveTranslation returns the edition id from --translation, the
// VERSEMIND_TRANSLATION env var, or the default.
func resolveTranslation(cmd *cobra.Command) string {
	if t, _ := cmd.Flags().GetString("translation"); t != "" {
		return t
	}
	if t := os.Getenv("VERSEMIND_TRANSLATION"); t != "" {
		return t
	}
	return deck.DefaultTranslation
}

// newLibrary builds the deck source over the content API and the local
// deck directory.
func newLibrary() (*deck.Library, error) {
	dir, err := store.DefaultDeckDir()
	if err != nil {
		return nil, err
	}
	client := deck.NewClient(os.Getenv("VERSEMIND_API_BASE"))
	return deck.NewLibrary(client, dir), nil
}
