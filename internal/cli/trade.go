package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/journal"
)

func newTradeCmd(rs *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Record and manage individual trades",
	}

	var t journal.Trade
	var outcome string

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a closed trade",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			t.Outcome = journal.Outcome(outcome)
			saved, err := j.AddTrade(t)
			if err != nil {
				return err
			}
			rs.Log.Info("trade saved",
				zap.String("id", saved.ID),
				zap.String("pair", saved.Pair),
				zap.Float64("result", saved.Result),
			)
			fmt.Println(saved.ID)
			return nil
		},
	}
	add.Flags().StringVar(&t.Date, "date", "", "Trade date (YYYY-MM-DD)")
	add.Flags().StringVar(&t.Pair, "pair", "", "Instrument, e.g. EURUSD")
	add.Flags().StringVar(&t.Type, "type", "", "long, short, or a free-form tag")
	add.Flags().StringVar(&t.Strategy, "strategy", "", "Strategy name (optional)")
	add.Flags().StringVar(&outcome, "outcome", "", "TP1|TP2|BE|SL (optional)")
	add.Flags().Float64Var(&t.Size, "size", 0, "Position size (optional)")
	add.Flags().Float64Var(&t.Result, "result", 0, "Realized P/L")
	add.Flags().Float64Var(&t.Pips, "pips", 0, "Pips (optional)")
	add.Flags().StringVar(&t.Notes, "notes", "", "Free-form notes")
	add.MarkFlagRequired("date")
	add.MarkFlagRequired("pair")
	add.MarkFlagRequired("result")

	var id string
	rm := &cobra.Command{
		Use:   "rm",
		Short: "Delete a trade by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()
			return j.DeleteTrade(id)
		},
	}
	rm.Flags().StringVar(&id, "id", "", "Trade ID")
	rm.MarkFlagRequired("id")

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Delete all trades",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			if err := j.ClearTrades(); err != nil {
				return err
			}
			fmt.Println("trades cleared")
			return nil
		},
	}

	cmd.AddCommand(add, rm, clear)
	return cmd
}
