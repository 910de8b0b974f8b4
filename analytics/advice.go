package analytics

import "math"

// Sample floors below which the rule tables are suppressed in favor of a
// single "collect more data" message.
const (
	MinDays   = 5
	MinTrades = 10
)

const (
	adviceFewDays   = "Log at least 5 days for a more reliable analysis."
	adviceFewTrades = "Log at least 10 trades for a more reliable analysis."
)

// dailyRule maps a condition over the daily view's metrics to a coaching
// message. Rules are evaluated independently; every match is collected.
type dailyRule struct {
	applies func(m DailyMetrics) bool
	message string
}

// DailyMetrics is the precomputed input to the daily advice table.
type DailyMetrics struct {
	Days            int
	StartingBalance float64
	Net             float64
	WinRateDays     float64
	MaxDrawdown     float64
}

var dailyRules = []dailyRule{
	{
		applies: func(m DailyMetrics) bool {
			return m.StartingBalance > 0 && math.Abs(m.MaxDrawdown)/m.StartingBalance > 0.10
		},
		message: "Drawdown is high: reduce risk or position size for a while.",
	},
	{
		applies: func(m DailyMetrics) bool { return m.WinRateDays < 0.40 },
		message: "Day win rate is low: review your entry plan or trade less.",
	},
	{
		applies: func(m DailyMetrics) bool { return m.Net < 0 },
		message: "Net P/L is negative: focus on quality over quantity and watch your loss size.",
	},
}

// DailyAdvice runs the daily-view rule table. Below the 5-day sample
// floor only the insufficient-sample message is returned.
func DailyAdvice(m DailyMetrics) []string {
	if m.Days < MinDays {
		return []string{adviceFewDays}
	}
	var out []string
	for _, r := range dailyRules {
		if r.applies(m) {
			out = append(out, r.message)
		}
	}
	return out
}

type tradeRule struct {
	applies func(s Stats) bool
	message string
}

var tradeRules = []tradeRule{
	{
		applies: func(s Stats) bool { return s.ProfitFactor < 1 },
		message: "Profit factor is below 1: watch your average loss and work on shrinking it.",
	},
	{
		applies: func(s Stats) bool { return s.WinRate < 0.45 },
		message: "Win rate is low: focus on entry quality or trade calmer markets.",
	},
	{
		applies: func(s Stats) bool { return s.Expectancy < 0 },
		message: "Expectancy is negative: rework your exits and stops, or improve risk/reward.",
	},
}

// TradeAdvice runs the trade-view rule table. Below the 10-trade sample
// floor only the insufficient-sample message is returned.
func TradeAdvice(s Stats) []string {
	if s.Total < MinTrades {
		return []string{adviceFewTrades}
	}
	var out []string
	for _, r := range tradeRules {
		if r.applies(s) {
			out = append(out, r.message)
		}
	}
	return out
}
