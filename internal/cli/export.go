package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/analytics"
	"github.com/rustyeddy/fxjournal/journal"
)

func newExportCmd(rs *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journal views as CSV",
	}

	var out string

	daily := &cobra.Command{
		Use:   "daily",
		Short: "Export the daily view (date,daily_pl,balance)",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			curve := analytics.BuildCurve(j.Store().DailyLogs(), rs.Cfg.Account.StartingBalance)
			rows := make([]journal.DailyExportRow, 0, len(curve))
			for _, p := range curve {
				rows = append(rows, journal.DailyExportRow{Date: p.Date, PL: p.PL, Balance: p.Equity})
			}

			return writeExport(rs, out, "daily.csv", func(f *os.File) error {
				return journal.WriteDailyCSV(f, rows)
			})
		},
	}
	daily.Flags().StringVar(&out, "out", "", "Output file (default <export.dir>/daily.csv)")

	var tradesOut string
	trades := &cobra.Command{
		Use:   "trades",
		Short: "Export the trade view (date,pair,type,strategy,outcome,size,result,pips,notes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			return writeExport(rs, tradesOut, "trades.csv", func(f *os.File) error {
				return journal.WriteTradesCSV(f, j.Store().Trades())
			})
		},
	}
	trades.Flags().StringVar(&tradesOut, "out", "", "Output file (default <export.dir>/trades.csv)")

	cmd.AddCommand(daily, trades)
	return cmd
}

func writeExport(rs *rootState, out, defaultName string, write func(*os.File) error) error {
	if out == "" {
		dir := rs.Cfg.Export.Dir
		if dir == "" {
			dir = "."
		}
		out = filepath.Join(dir, defaultName)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	rs.Log.Info("export written", zap.String("path", out))
	fmt.Println(out)
	return nil
}
