package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/strategies"
)

func newStrategyCmd(rs *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Track strategies and their outcome tallies",
	}

	var s journal.Strategy

	set := &cobra.Command{
		Use:   "set",
		Short: "Create or update a strategy by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			saved, err := j.SaveStrategy(s)
			if err != nil {
				return err
			}
			fmt.Println(saved.ID)
			return nil
		},
	}
	set.Flags().StringVar(&s.Name, "name", "", "Strategy name (unique, case-insensitive)")
	set.Flags().IntVar(&s.Trades, "trades", 0, "Total trades taken")
	set.Flags().IntVar(&s.TP1, "tp1", 0, "Trades that reached TP1")
	set.Flags().IntVar(&s.TP2, "tp2", 0, "Trades that reached TP2")
	set.Flags().IntVar(&s.BE, "be", 0, "Trades closed break-even")
	set.Flags().IntVar(&s.SL, "sl", 0, "Trades stopped out")
	set.Flags().StringVar(&s.Notes, "notes", "", "Free-form notes")
	set.MarkFlagRequired("name")
	set.MarkFlagRequired("trades")

	var id string
	rm := &cobra.Command{
		Use:   "rm",
		Short: "Delete a strategy by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()
			return j.DeleteStrategy(id)
		},
	}
	rm.Flags().StringVar(&id, "id", "", "Strategy ID")
	rm.MarkFlagRequired("id")

	var topN int
	top := &cobra.Command{
		Use:   "top",
		Short: "Rank strategies by outcome score",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			ranked := strategies.Rank(j.Store().Strategies())
			if len(ranked) == 0 {
				fmt.Println("no strategies yet")
				return nil
			}
			if topN > 0 && topN < len(ranked) {
				ranked = ranked[:topN]
			}
			printStrategies(os.Stdout, ranked)
			return nil
		},
	}
	top.Flags().IntVar(&topN, "n", 3, "How many to show (0 = all)")

	cmd.AddCommand(set, rm, top)
	return cmd
}

func printStrategies(w *os.File, ranked []journal.Strategy) {
	for i, s := range ranked {
		r := strategies.OutcomeRates(s)
		a := strategies.Analyze(s)

		fmt.Fprintf(w, "#%d %s\n", i+1, s.Name)
		fmt.Fprintf(w, "Score:         %.3f\n", strategies.Score(s))
		fmt.Fprintf(w, "Trades:        %d (TP1 %.1f%%, TP2 %.1f%%, BE %.1f%%, SL %.1f%%)\n",
			s.Trades, r.TP1*100, r.TP2*100, r.BE*100, r.SL*100)
		fmt.Fprintf(w, "Strengths:     %s\n", joinOr(a.Strengths, "nothing clear yet (small sample)"))
		fmt.Fprintf(w, "Weaknesses:    %s\n", joinOr(a.Weaknesses, "no clear weaknesses right now"))
		fmt.Fprintf(w, "Tip:           %s\n", a.Tip)
		if s.Notes != "" {
			fmt.Fprintf(w, "Notes:         %s\n", s.Notes)
		}
		fmt.Fprintln(w)
	}
}

func joinOr(parts []string, fallback string) string {
	if len(parts) == 0 {
		return fallback
	}
	return strings.Join(parts, ", ")
}
