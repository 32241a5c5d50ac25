package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <surah-number>",
	Short: "Reset saved progress for one deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid surah number %q", args[0])
		}

		lib, err := newLibrary()
		if err != nil {
			return err
		}
		d, err := lib.Load(cmd.Context(), number, resolveTranslation(cmd))
		if err != nil {
			return fmt.Errorf("load deck %d: %w", number, err)
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Reset all progress for %s (%d verses)? [y/N] ", d.EnglishName, len(d.Items))
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec := progress.NewReconciler(cmd.Context(), st.ProgressRepo(), ProgressNamespace)
		if err := rec.ResetDeck(cmd.Context(), d.ID(), d.ItemIDs()); err != nil {
			return fmt.Errorf("reset deck: %w", err)
		}
		fmt.Printf("Progress for %s reset\n", d.EnglishName)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
