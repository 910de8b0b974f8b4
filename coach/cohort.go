package coach

import "github.com/rustyeddy/fxjournal/journal"

// Cohort labels a trade disciplined ("A") or undisciplined ("B").
type Cohort string

const (
	CohortA Cohort = "A"
	CohortB Cohort = "B"
)

// Index builds the TradeID-to-Evaluation lookup once per computation
// pass. Later duplicates win, matching the upsert order of the stored
// collection.
func Index(evals []journal.Evaluation) map[string]journal.Evaluation {
	m := make(map[string]journal.Evaluation, len(evals))
	for _, e := range evals {
		m[e.TradeID] = e
	}
	return m
}

// Classify puts a trade in cohort A only when its evaluation scored at
// least 7 with the plan followed, a clear setup and controlled risk.
// Trades without an evaluation are cohort B.
func Classify(t journal.Trade, evals map[string]journal.Evaluation) Cohort {
	e, ok := evals[t.ID]
	if !ok {
		return CohortB
	}
	if e.Score >= 7 && e.FollowedPlan && e.HadClearSetup && e.RiskOk {
		return CohortA
	}
	return CohortB
}

// Split partitions trades into the A and B cohorts.
func Split(trades []journal.Trade, evals []journal.Evaluation) (a, b []journal.Trade) {
	idx := Index(evals)
	for _, t := range trades {
		if Classify(t, idx) == CohortA {
			a = append(a, t)
		} else {
			b = append(b, t)
		}
	}
	return a, b
}

// CohortStats summarizes one cohort against the starting capital.
type CohortStats struct {
	Count   int
	Net     float64
	Equity  float64
	WinRate float64
	Best    float64
	Worst   float64
}

// Stats computes a cohort's aggregate performance.
func Stats(trades []journal.Trade, initialCapital float64) CohortStats {
	s := CohortStats{Count: len(trades)}
	if s.Count == 0 {
		s.Equity = initialCapital
		return s
	}
	wins := 0
	s.Best = trades[0].Result
	s.Worst = trades[0].Result
	for _, t := range trades {
		s.Net += t.Result
		if t.Result > 0 {
			wins++
		}
		if t.Result > s.Best {
			s.Best = t.Result
		}
		if t.Result < s.Worst {
			s.Worst = t.Result
		}
	}
	s.Equity = initialCapital + s.Net
	s.WinRate = float64(wins) / float64(s.Count)
	return s
}

// Delta is the disciplined-minus-undisciplined comparison shown by the
// personas view.
type Delta struct {
	Net     float64
	WinRate float64
	Count   int
}

// Diff compares cohort A's stats against cohort B's.
func Diff(a, b CohortStats) Delta {
	return Delta{
		Net:     a.Net - b.Net,
		WinRate: a.WinRate - b.WinRate,
		Count:   a.Count - b.Count,
	}
}
