package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/fxjournal/journal"
)

func newBackupCmd(rs *rootState) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write an xz-compressed snapshot of all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
			if err := journal.WriteBackup(j.Store(), f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			rs.Log.Info("backup written", zap.String("path", out))
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "journal-backup.json.xz", "Backup file to write")
	return cmd
}

func newRestoreCmd(rs *rootState) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Replace all collections from a backup snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open backup: %w", err)
			}
			defer f.Close()

			snap, err := journal.ReadBackup(f)
			if err != nil {
				return err
			}

			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			if err := journal.Restore(j.Store(), snap); err != nil {
				return err
			}
			fmt.Printf("restored %d daily logs, %d trades, %d strategies, %d evaluations\n",
				len(snap.DailyLogs), len(snap.Trades), len(snap.Strategies), len(snap.Evaluations))
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Backup file to read")
	cmd.MarkFlagRequired("in")
	return cmd
}

func newImportCmd(rs *rootState) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import daily CSV exports from a zip archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := rs.openJournal()
			if err != nil {
				return err
			}
			defer j.Close()

			n, err := journal.ImportDailyZip(j, in)
			if err != nil {
				return err
			}
			fmt.Printf("imported %d daily entries\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Zip archive of daily CSV exports")
	cmd.MarkFlagRequired("in")
	return cmd
}
