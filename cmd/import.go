package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Validate a custom deck file and add it to the local library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := newLibrary()
		if err != nil {
			return err
		}
		d, err := lib.Import(args[0])
		if err != nil {
			return fmt.Errorf("import deck: %w", err)
		}
		fmt.Printf("Imported deck %d (%s), %d verses\n",
			d.Number, d.EnglishName, len(d.Items))
		return nil
	},
}
