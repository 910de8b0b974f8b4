package strategies

import "github.com/rustyeddy/fxjournal/journal"

// Analysis is the qualitative read of a strategy's outcome rates.
type Analysis struct {
	Strengths  []string
	Weaknesses []string
	Tip        string
}

// Threshold tables over outcome rates. Strength and weakness rules are
// independent; several can apply at once. Tip rules are ordered and the
// first match wins.

type rateRule struct {
	applies func(Rates) bool
	message string
}

var strengthRules = []rateRule{
	{func(r Rates) bool { return r.TP2 >= 0.25 }, "high TP2 reach"},
	{func(r Rates) bool { return r.TP1 >= 0.45 }, "excellent TP1 reach"},
	{func(r Rates) bool { return r.SL <= 0.20 }, "low stop-out rate (risk under control)"},
	{func(r Rates) bool { return r.BE >= 0.20 }, "good entry protection (BE)"},
}

var weaknessRules = []rateRule{
	{func(r Rates) bool { return r.SL >= 0.30 }, "high stop-out rate"},
	{func(r Rates) bool { return r.TP2 < 0.10 }, "weak TP2 reach"},
	{func(r Rates) bool { return r.TP1 < 0.25 }, "weak TP1 reach"},
	{func(r Rates) bool { return r.BE < 0.05 }, "little entry protection"},
}

var tipRules = []rateRule{
	{func(r Rates) bool { return r.SL >= 0.30 },
		"Reduce risk or tighten your entry and stop conditions."},
	{func(r Rates) bool { return r.TP1 >= 0.40 && r.TP2 < 0.12 },
		"Try splitting contracts: take part at TP1 and leave part to run to TP2."},
	{func(r Rates) bool { return r.BE >= 0.30 && r.TP2 < 0.12 },
		"You may be moving the stop too early; try delaying break-even a little."},
	{func(r Rates) bool { return r.TP1 < 0.25 && r.SL >= 0.30 },
		"Stronger filtering needed (time, session, or zone)."},
}

const fallbackTip = "Keep going and watch performance as the sample grows."

// Analyze applies the threshold tables to the strategy's outcome rates.
func Analyze(s journal.Strategy) Analysis {
	r := OutcomeRates(s)
	a := Analysis{Tip: fallbackTip}

	for _, rule := range strengthRules {
		if rule.applies(r) {
			a.Strengths = append(a.Strengths, rule.message)
		}
	}
	for _, rule := range weaknessRules {
		if rule.applies(r) {
			a.Weaknesses = append(a.Weaknesses, rule.message)
		}
	}
	for _, rule := range tipRules {
		if rule.applies(r) {
			a.Tip = rule.message
			break
		}
	}
	return a
}
