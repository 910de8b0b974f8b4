package journal

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	_, path := newTestSQLite(t)

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('daily_logs','trades','strategies','evaluations')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	require.NoError(t, rows.Err())

	assert.True(t, found["daily_logs"])
	assert.True(t, found["trades"])
	assert.True(t, found["strategies"])
	assert.True(t, found["evaluations"])
}

func TestSQLiteDailyLogsRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)

	logs := []DailyLog{
		{Date: "2024-01-01", PL: 100},
		{Date: "2024-01-02", PL: -40.5},
	}
	require.NoError(t, s.SaveDailyLogs(logs))
	assert.ElementsMatch(t, logs, s.DailyLogs())
}

func TestSQLiteTradesRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)

	trades := []Trade{
		{ID: "T1", Date: "2024-01-01", Pair: "EURUSD", Type: "long", Strategy: "Breakout", Outcome: OutcomeTP2, Size: 0.5, Result: 120, Pips: 35, Notes: "clean"},
		{ID: "T2", Date: "2024-01-03", Pair: "GBPUSD", Result: -60},
	}
	require.NoError(t, s.SaveTrades(trades))
	assert.ElementsMatch(t, trades, s.Trades())
}

func TestSQLiteStrategiesRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)

	strats := []Strategy{{ID: "S1", Name: "London Open", Trades: 20, TP1: 9, TP2: 4, BE: 3, SL: 4, Notes: "session play"}}
	require.NoError(t, s.SaveStrategies(strats))
	assert.Equal(t, strats, s.Strategies())
}

func TestSQLiteEvaluationsRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)

	evals := []Evaluation{{
		TradeID:               "T1",
		Score:                 8.5,
		FollowedPlan:          true,
		HadClearSetup:         true,
		RiskOk:                true,
		WaitedForConfirmation: false,
		RevengeTrade:          false,
		Overtraded:            true,
		Notes:                 "late entry",
		CreatedAt:             time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	require.NoError(t, s.SaveEvaluations(evals))

	got := s.Evaluations()
	require.Len(t, got, 1)
	assert.Equal(t, evals[0].TradeID, got[0].TradeID)
	assert.InDelta(t, evals[0].Score, got[0].Score, 1e-9)
	assert.True(t, got[0].FollowedPlan)
	assert.True(t, got[0].Overtraded)
	assert.False(t, got[0].WaitedForConfirmation)
	assert.True(t, got[0].CreatedAt.Equal(evals[0].CreatedAt))
}

func TestSQLiteSaveReplacesCollection(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)

	require.NoError(t, s.SaveTrades([]Trade{
		{ID: "T1", Date: "2024-01-01", Pair: "EURUSD", Result: 1},
		{ID: "T2", Date: "2024-01-02", Pair: "EURUSD", Result: 2},
	}))
	require.NoError(t, s.SaveTrades([]Trade{
		{ID: "T3", Date: "2024-01-03", Pair: "USDJPY", Result: 3},
	}))

	trades := s.Trades()
	require.Len(t, trades, 1)
	assert.Equal(t, "T3", trades[0].ID)
}

func TestSQLiteWorksWithJournalOps(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t)
	j := New(s)

	require.NoError(t, j.AddDailyLog("2024-01-01", 100))
	require.NoError(t, j.AddDailyLog("2024-01-01", -25))

	logs := s.DailyLogs()
	require.Len(t, logs, 1)
	assert.InDelta(t, -25, logs[0].PL, 1e-9)
}
