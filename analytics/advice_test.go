package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyAdviceBelowSampleFloor(t *testing.T) {
	t.Parallel()

	out := DailyAdvice(DailyMetrics{
		Days:            4,
		StartingBalance: 1000,
		Net:             -500,
		WinRateDays:     0.1,
		MaxDrawdown:     -900,
	})

	// Every other rule is suppressed below the floor.
	assert.Equal(t, []string{adviceFewDays}, out)
}

func TestDailyAdviceCollectsAllMatches(t *testing.T) {
	t.Parallel()

	out := DailyAdvice(DailyMetrics{
		Days:            10,
		StartingBalance: 1000,
		Net:             -50,
		WinRateDays:     0.3,
		MaxDrawdown:     -200,
	})

	assert.Len(t, out, 3)
}

func TestDailyAdviceHealthyAccount(t *testing.T) {
	t.Parallel()

	out := DailyAdvice(DailyMetrics{
		Days:            10,
		StartingBalance: 1000,
		Net:             120,
		WinRateDays:     0.6,
		MaxDrawdown:     -50,
	})

	assert.Empty(t, out)
}

func TestDailyAdviceDrawdownThreshold(t *testing.T) {
	t.Parallel()

	m := DailyMetrics{Days: 10, StartingBalance: 1000, Net: 10, WinRateDays: 0.5}

	m.MaxDrawdown = -100 // exactly 10%, not over
	assert.Empty(t, DailyAdvice(m))

	m.MaxDrawdown = -101
	assert.Len(t, DailyAdvice(m), 1)
}

func TestTradeAdviceBelowSampleFloor(t *testing.T) {
	t.Parallel()

	out := TradeAdvice(Stats{Total: 9, ProfitFactor: 0.5, WinRate: 0.2, Expectancy: -5})
	assert.Equal(t, []string{adviceFewTrades}, out)
}

func TestTradeAdviceCollectsAllMatches(t *testing.T) {
	t.Parallel()

	out := TradeAdvice(Stats{Total: 12, ProfitFactor: 0.8, WinRate: 0.40, Expectancy: -2})
	assert.Len(t, out, 3)
}

func TestTradeAdviceHealthy(t *testing.T) {
	t.Parallel()

	out := TradeAdvice(Stats{Total: 12, ProfitFactor: 1.6, WinRate: 0.55, Expectancy: 12})
	assert.Empty(t, out)
}
