package journal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDailyCSV(t *testing.T) {
	t.Parallel()

	rows := []DailyExportRow{
		{Date: "2024-01-01", PL: 100, Balance: 1100},
		{Date: "2024-01-02", PL: -40.5, Balance: 1059.5},
	}

	var b strings.Builder
	require.NoError(t, WriteDailyCSV(&b, rows))

	want := "date,daily_pl,balance\n" +
		"2024-01-01,100.00,1100.00\n" +
		"2024-01-02,-40.50,1059.50\n"
	assert.Equal(t, want, b.String())
}

func TestWriteDailyCSVEmpty(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, WriteDailyCSV(&b, nil))
	assert.Equal(t, "date,daily_pl,balance\n", b.String())
}

func TestWriteTradesCSV(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-01-03", Pair: "gbpusd", Type: "short", Strategy: "Reversal", Outcome: OutcomeSL, Size: 0.5, Result: -60, Pips: -20, Notes: "bad timing"},
		{Date: "2024-01-01", Pair: "EURUSD", Type: "long", Strategy: "Breakout", Outcome: OutcomeTP2, Result: 120, Notes: ""},
	}

	var b strings.Builder
	require.NoError(t, WriteTradesCSV(&b, trades))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "date,pair,type,strategy,outcome,size,result,pips,notes", lines[0])
	// Rows come out sorted by date, pairs uppercased, empty optionals blank.
	assert.Equal(t, "2024-01-01,EURUSD,long,Breakout,TP2,,120.00,,", lines[1])
	assert.Equal(t, "2024-01-03,GBPUSD,short,Reversal,SL,0.5,-60.00,-20,bad timing", lines[2])
}

func TestWriteTradesCSVSanitizesFreeText(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-01-01", Pair: "EURUSD", Result: 10, Notes: "entered late,\nexited early"},
	}

	var b strings.Builder
	require.NoError(t, WriteTradesCSV(&b, trades))

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-01-01,EURUSD,,,,,10.00,,entered late  exited early", lines[1])
}

func TestWriteTradesCSVDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	trades := []Trade{
		{Date: "2024-02-01", Pair: "EURUSD", Result: 1},
		{Date: "2024-01-01", Pair: "EURUSD", Result: 2},
	}

	var b strings.Builder
	require.NoError(t, WriteTradesCSV(&b, trades))

	assert.Equal(t, "2024-02-01", trades[0].Date)
}
