package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/fxjournal/analytics"
	"github.com/rustyeddy/fxjournal/journal"
	"github.com/rustyeddy/fxjournal/strategies"
)

func newReportCmd(rs *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full journal summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			PrintReport(os.Stdout, j.Store(), rs.Cfg.Account.StartingBalance)
			return nil
		},
	}
}

// PrintReport renders every derived view of the journal as plain text.
func PrintReport(w io.Writer, store journal.Store, startingBalance float64) {
	logs := store.DailyLogs()
	trades := store.Trades()
	strats := store.Strategies()

	curve := analytics.BuildCurve(logs, startingBalance)
	dd := analytics.DrawdownSeries(curve)
	maxDD := analytics.MaxDrawdown(dd)
	lastEquity := analytics.LastEquity(curve, startingBalance)
	winRateDays := analytics.WinRateDays(logs)
	net := lastEquity - startingBalance

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Account")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start Balance: %.2f\n", startingBalance)
	fmt.Fprintf(w, "Equity:        %.2f\n", lastEquity)
	fmt.Fprintf(w, "Net P/L:       %+.2f\n", net)
	fmt.Fprintf(w, "Days Logged:   %d\n", len(logs))
	fmt.Fprintf(w, "Day Win Rate:  %.1f%%\n", winRateDays*100)
	fmt.Fprintf(w, "Max Drawdown:  %.2f\n", maxDD)

	months := analytics.MonthlyAggregate(logs)
	if len(months) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Monthly")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, m := range months {
			fmt.Fprintf(w, "%s   %+10.2f   (%d days)\n", m.Month, m.Sum, m.Count)
		}
		if best, ok := analytics.BestMonth(months); ok {
			fmt.Fprintf(w, "Best Month:    %s (%+.2f)\n", best.Month, best.Sum)
		}
		if worst, ok := analytics.WorstMonth(months); ok {
			fmt.Fprintf(w, "Worst Month:   %s (%+.2f)\n", worst.Month, worst.Sum)
		}
		fmt.Fprintf(w, "Last 3 Months: %+.2f\n", analytics.LastNTotal(months, 3))
	}

	stats := analytics.TradeStats(trades)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Trades:        %d\n", stats.Total)
	fmt.Fprintf(w, "Win Rate:      %.1f%%\n", stats.WinRate*100)
	fmt.Fprintf(w, "Best:          %+.2f\n", stats.Best)
	fmt.Fprintf(w, "Worst:         %+.2f\n", stats.Worst)
	fmt.Fprintf(w, "Profit Factor: %.2f\n", stats.ProfitFactor)
	fmt.Fprintf(w, "Expectancy:    %+.2f\n", stats.Expectancy)

	if len(strats) > 0 {
		ranked := strategies.Rank(strats)
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Strategies")
		fmt.Fprintln(w, "--------------------------------------------------")
		for i, s := range ranked {
			fmt.Fprintf(w, "#%d %-20s score %.3f (%d trades)\n", i+1, s.Name, strategies.Score(s), s.Trades)
		}
	}

	daily := analytics.DailyAdvice(analytics.DailyMetrics{
		Days:            len(curve),
		StartingBalance: startingBalance,
		Net:             net,
		WinRateDays:     winRateDays,
		MaxDrawdown:     maxDD,
	})
	tradeTips := analytics.TradeAdvice(stats)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Coaching")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, tip := range daily {
		fmt.Fprintf(w, "- %s\n", tip)
	}
	for _, tip := range tradeTips {
		fmt.Fprintf(w, "- %s\n", tip)
	}

	fmt.Fprintln(w)
}
