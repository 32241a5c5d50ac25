package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/versemind/internal/deck"
)

var decksCmd = &cobra.Command{
	Use:   "decks",
	Short: "List the deck catalogue (optionally filtered)",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := newLibrary()
		if err != nil {
			return err
		}
		infos, err := lib.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		if query, _ := cmd.Flags().GetString("filter"); query != "" {
			infos = deck.Filter(infos, query)
			if len(infos) == 0 {
				return fmt.Errorf("no decks match %q", query)
			}
		}

		// Header.
		fmt.Printf("%5s  %-24s  %-28s  %6s  %s\n",
			"No.", "Name", "English name", "Verses", "Origin")
		fmt.Println(strings.Repeat("─", 78))

		for _, in := range infos {
			origin := in.RevelationType
			if in.Local {
				origin = "local"
			}
			fmt.Printf("%5d  %-24s  %-28s  %6d  %s\n",
				in.Number, in.Name, in.EnglishName, in.ItemCount, origin)
		}

		fmt.Printf("\n%d decks\n", len(infos))
		return nil
	},
}

func init() {
	decksCmd.Flags().String("filter", "", "Filter by name, number, or verse reference (e.g. 2:255)")
}
