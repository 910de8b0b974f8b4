package journal

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTrip(t *testing.T) {
	t.Parallel()

	src, err := NewJSON(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, src.SaveDailyLogs([]DailyLog{{Date: "2024-01-01", PL: 100}}))
	require.NoError(t, src.SaveTrades([]Trade{{ID: "T1", Date: "2024-01-01", Pair: "EURUSD", Result: 50, Outcome: OutcomeTP1}}))
	require.NoError(t, src.SaveStrategies([]Strategy{{ID: "S1", Name: "Breakout", Trades: 5, TP1: 2}}))
	require.NoError(t, src.SaveEvaluations([]Evaluation{{TradeID: "T1", Score: 8, FollowedPlan: true, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}}))

	var buf bytes.Buffer
	require.NoError(t, WriteBackup(src, &buf))

	snap, err := ReadBackup(&buf)
	require.NoError(t, err)

	assert.Equal(t, src.DailyLogs(), snap.DailyLogs)
	assert.Equal(t, src.Trades(), snap.Trades)
	assert.Equal(t, src.Strategies(), snap.Strategies)
	assert.Equal(t, src.Evaluations(), snap.Evaluations)
}

func TestRestoreReplacesEveryCollection(t *testing.T) {
	t.Parallel()

	dst, err := NewJSON(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, dst.SaveTrades([]Trade{{ID: "stale", Date: "2023-01-01", Pair: "USDJPY", Result: 1}}))

	snap := Snapshot{
		DailyLogs: []DailyLog{{Date: "2024-01-01", PL: 10}},
		Trades:    []Trade{{ID: "T1", Date: "2024-01-01", Pair: "EURUSD", Result: 10}},
	}
	require.NoError(t, Restore(dst, snap))

	trades := dst.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, "T1", trades[0].ID)
	assert.Len(t, dst.DailyLogs(), 1)
	assert.Empty(t, dst.Strategies())
	assert.Empty(t, dst.Evaluations())
}

func TestReadBackupRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ReadBackup(bytes.NewReader([]byte("not an archive")))
	assert.Error(t, err)
}

func writeTestZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "daily.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return path
}

func TestImportDailyZip(t *testing.T) {
	t.Parallel()

	path := writeTestZip(t, map[string]string{
		"daily.csv": "date,daily_pl,balance\n" +
			"2024-01-01,100.00,1100.00\n" +
			"2024-01-02,-40.50,1059.50\n",
		"readme.txt": "ignore me",
	})

	j := newTestJournal(t)
	n, err := ImportDailyZip(j, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	logs := j.Store().DailyLogs()
	require.Len(t, logs, 2)

	byDate := map[string]float64{}
	for _, l := range logs {
		byDate[l.Date] = l.PL
	}
	assert.InDelta(t, 100, byDate["2024-01-01"], 1e-9)
	assert.InDelta(t, -40.5, byDate["2024-01-02"], 1e-9)
}

func TestImportDailyZipUpsertsExistingDates(t *testing.T) {
	t.Parallel()

	j := newTestJournal(t)
	require.NoError(t, j.AddDailyLog("2024-01-01", 1))

	path := writeTestZip(t, map[string]string{
		"daily.csv": "date,daily_pl\n2024-01-01,250\n",
	})

	n, err := ImportDailyZip(j, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	logs := j.Store().DailyLogs()
	require.Len(t, logs, 1)
	assert.InDelta(t, 250, logs[0].PL, 1e-9)
}

func TestImportDailyZipRejectsWrongHeader(t *testing.T) {
	t.Parallel()

	path := writeTestZip(t, map[string]string{
		"trades.csv": "date,pair,type\n2024-01-01,EURUSD,long\n",
	})

	j := newTestJournal(t)
	_, err := ImportDailyZip(j, path)
	assert.Error(t, err)
}
