package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := NewJSON(t.TempDir())
	require.NoError(t, err)

	logs := []DailyLog{{Date: "2024-01-01", PL: -12.5}}
	trades := []Trade{{ID: "T1", Date: "2024-01-01", Pair: "EURUSD", Result: 30, Outcome: OutcomeTP1}}
	strats := []Strategy{{ID: "S1", Name: "Breakout", Trades: 10, TP1: 4}}
	evals := []Evaluation{{TradeID: "T1", Score: 7.5, FollowedPlan: true, CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)}}

	require.NoError(t, s.SaveDailyLogs(logs))
	require.NoError(t, s.SaveTrades(trades))
	require.NoError(t, s.SaveStrategies(strats))
	require.NoError(t, s.SaveEvaluations(evals))

	assert.Equal(t, logs, s.DailyLogs())
	assert.Equal(t, trades, s.Trades())
	assert.Equal(t, strats, s.Strategies())
	assert.Equal(t, evals, s.Evaluations())
}

func TestJSONStoreMissingReadsEmpty(t *testing.T) {
	t.Parallel()

	s, err := NewJSON(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, s.DailyLogs())
	assert.Empty(t, s.Trades())
	assert.Empty(t, s.Strategies())
	assert.Empty(t, s.Evaluations())
}

func TestJSONStoreMalformedReadsEmpty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewJSON(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "trades.json"), []byte("{not json"), 0644))

	assert.Empty(t, s.Trades())
}

func TestJSONStoreSaveReplacesCollection(t *testing.T) {
	t.Parallel()

	s, err := NewJSON(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.SaveDailyLogs([]DailyLog{{Date: "2024-01-01", PL: 1}, {Date: "2024-01-02", PL: 2}}))
	require.NoError(t, s.SaveDailyLogs([]DailyLog{{Date: "2024-01-03", PL: 3}}))

	logs := s.DailyLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, "2024-01-03", logs[0].Date)
}

func TestJSONStoreClearWritesEmptyArray(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewJSON(dir)
	require.NoError(t, err)

	require.NoError(t, s.SaveTrades(nil))

	data, err := os.ReadFile(filepath.Join(dir, "trades.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}
