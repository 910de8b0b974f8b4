package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDailyCmd(rs *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Record and manage daily P/L entries",
	}

	var (
		date string
		pl   float64
	)

	add := &cobra.Command{
		Use:   "add",
		Short: "Record one day's P/L (replaces any entry for the same date)",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.AddDailyLog(date, pl); err != nil {
				return err
			}
			rs.Log.Info("daily log saved", zap.String("date", date), zap.Float64("pl", pl))
			return nil
		},
	}
	add.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	add.Flags().Float64Var(&pl, "pl", 0, "Signed P/L for the day")
	add.MarkFlagRequired("date")
	add.MarkFlagRequired("pl")

	var rmDate string
	rm := &cobra.Command{
		Use:   "rm",
		Short: "Delete one day's entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()
			return j.DeleteDailyLog(rmDate)
		},
	}
	rm.Flags().StringVar(&rmDate, "date", "", "Day to delete (YYYY-MM-DD)")
	rm.MarkFlagRequired("date")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all daily entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.ClearDailyLogs(); err != nil {
				return err
			}
			fmt.Println("daily logs cleared")
			return nil
		},
	}

	cmd.AddCommand(add, rm, clear)
	return cmd
}
