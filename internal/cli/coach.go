package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/coach"
)

func newCoachCmd(rs *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Evaluate decision quality and compare disciplined vs undisciplined trades",
	}

	var (
		tradeID string
		notes   string
		flags   = coach.DefaultFlags()
	)

	eval := &cobra.Command{
		Use:   "eval",
		Short: "Save a decision-quality evaluation for a trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			var target *float64
			for _, t := range j.Store().Trades() {
				if t.ID == tradeID {
					r := t.Result
					target = &r
					break
				}
			}
			if target == nil {
				return fmt.Errorf("trade %q not found", tradeID)
			}

			e := coach.NewEvaluation(tradeID, flags, notes)
			if err := j.SaveEvaluation(e); err != nil {
				return err
			}

			fmt.Printf("Score:   %.1f/10\n", e.Score)
			fmt.Printf("Verdict: %s\n", coach.Verdict(*target, e.Score))
			return nil
		},
	}
	eval.Flags().StringVar(&tradeID, "trade", "", "Trade ID to evaluate")
	eval.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	eval.Flags().BoolVar(&flags.FollowedPlan, "followed-plan", flags.FollowedPlan, "Entry followed the written plan")
	eval.Flags().BoolVar(&flags.HadClearSetup, "clear-setup", flags.HadClearSetup, "Setup was clear before entry")
	eval.Flags().BoolVar(&flags.RiskOk, "risk-ok", flags.RiskOk, "Risk per trade was within limits")
	eval.Flags().BoolVar(&flags.WaitedForConfirmation, "waited", flags.WaitedForConfirmation, "Waited for confirmation")
	eval.Flags().BoolVar(&flags.RevengeTrade, "revenge", flags.RevengeTrade, "This was a revenge trade")
	eval.Flags().BoolVar(&flags.Overtraded, "overtraded", flags.Overtraded, "Part of an overtrading streak")
	eval.MarkFlagRequired("trade")

	personas := &cobra.Command{
		Use:   "personas",
		Short: "Compare cohort A (disciplined) against cohort B",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			trades := j.Store().Trades()
			evals := j.Store().Evaluations()
			a, b := coach.Split(trades, evals)

			initial := rs.Cfg.Account.StartingBalance
			sa := coach.Stats(a, initial)
			sb := coach.Stats(b, initial)
			d := coach.Diff(sa, sb)

			w := os.Stdout
			printCohort(w, "Cohort A (disciplined)", sa)
			printCohort(w, "Cohort B (undisciplined)", sb)
			fmt.Fprintln(w, "Difference (A - B)")
			fmt.Fprintln(w, "--------------------------------------------------")
			fmt.Fprintf(w, "Net:           %+.2f\n", d.Net)
			fmt.Fprintf(w, "Win Rate:      %+.1f%%\n", d.WinRate*100)
			fmt.Fprintf(w, "Trades:        %+d\n", d.Count)
			return nil
		},
	}

	cmd.AddCommand(eval, personas)
	return cmd
}

func printCohort(w *os.File, title string, s coach.CohortStats) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", s.Count)
	fmt.Fprintf(w, "Net P/L:       %.2f\n", s.Net)
	fmt.Fprintf(w, "Equity:        %.2f\n", s.Equity)
	fmt.Fprintf(w, "Win Rate:      %.1f%%\n", s.WinRate*100)
	fmt.Fprintf(w, "Best:          %.2f\n", s.Best)
	fmt.Fprintf(w, "Worst:         %.2f\n", s.Worst)
	fmt.Fprintln(w)
}
