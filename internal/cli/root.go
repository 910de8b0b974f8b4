// Package cli wires the journal, analytics and coaching packages into the
// fxjournal command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rustyeddy/fxjournal/config"
	"github.com/rustyeddy/fxjournal/journal"
)

// rootState carries the resolved config and logger to the subcommands.
type rootState struct {
	ConfigPath string
	DataPath   string
	LogLevel   string

	Cfg *config.Config
	Log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	rs := &rootState{}

	cmd := &cobra.Command{
		Use:           "fxjournal",
		Short:         "fxjournal is a trading-journal analytics and coaching tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global / persistent flags
	cmd.PersistentFlags().StringVar(&rs.ConfigPath, "config", "", "Path to config file (optional)")
	cmd.PersistentFlags().StringVar(&rs.DataPath, "data", "", "Storage path override (data dir or sqlite file)")
	cmd.PersistentFlags().StringVar(&rs.LogLevel, "log-level", "info", "Log level: debug|info|warn|error")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(rs.LogLevel)
		if err != nil {
			return err
		}
		rs.Log = log

		if rs.ConfigPath != "" {
			cfg, err := config.LoadFromFile(rs.ConfigPath)
			if err != nil {
				return err
			}
			rs.Cfg = cfg
		} else {
			rs.Cfg = config.Default()
		}
		if rs.DataPath != "" {
			rs.Cfg.Storage.Path = rs.DataPath
		}
		return nil
	}

	// Subcommands
	cmd.AddCommand(
		newDailyCmd(rs),
		newTradeCmd(rs),
		newStrategyCmd(rs),
		newCoachCmd(rs),
		newReportCmd(rs),
		newExportCmd(rs),
		newBackupCmd(rs),
		newRestoreCmd(rs),
		newImportCmd(rs),
	)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("fxjournal (dev)")
		},
	})

	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// openJournal opens the configured store. Callers own the Close.
func (rs *rootState) openJournal() (*journal.Journal, error) {
	store, err := rs.openStore()
	if err != nil {
		return nil, err
	}
	return journal.New(store), nil
}

func (rs *rootState) openStore() (journal.Store, error) {
	switch rs.Cfg.Storage.Type {
	case "sqlite":
		rs.Log.Debug("opening sqlite store", zap.String("path", rs.Cfg.Storage.Path))
		return journal.NewSQLite(rs.Cfg.Storage.Path)
	case "json":
		rs.Log.Debug("opening json store", zap.String("dir", rs.Cfg.Storage.Path))
		return journal.NewJSON(rs.Cfg.Storage.Path)
	default:
		return nil, fmt.Errorf("unknown storage type %q", rs.Cfg.Storage.Type)
	}
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
