package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/versemind/internal/progress"
	"github.com/abhisek/versemind/internal/stats"
	"github.com/abhisek/versemind/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		s := stats.Compute(rec.Record(), time.Now())

		fmt.Printf("Streak     %d day(s) (longest %d)\n",
			s.Streak.Current, s.Streak.Longest)
		fmt.Printf("Today      %d verse(s) mastered\n", s.TodayCount)
		fmt.Printf("This week  %d verse(s) mastered\n\n", s.WeekCount)

		max := 0
		for _, p := range s.Chart {
			if p.Value > max {
				max = p.Value
			}
		}
		for _, p := range s.Chart {
			width := 0
			if max > 0 {
				width = p.Value * 30 / max
			}
			fmt.Printf("%-4s %3d %s\n", p.Label, p.Value, strings.Repeat("█", width))
		}
		return nil
	},
}
