package analytics

import "github.com/rustyeddy/fxjournal/journal"

// ProfitFactorCap is the sentinel reported when there are gains but no
// losses: the ratio is undefined, effectively infinite, and 999 keeps it
// comparable in rankings and thresholds.
const ProfitFactorCap = 999

// Stats summarizes a set of discrete trade outcomes.
type Stats struct {
	Total        int
	WinRate      float64
	Best         float64
	Worst        float64
	GrossWin     float64
	GrossLoss    float64 // absolute value
	AvgWin       float64
	AvgLoss      float64 // negative or zero
	ProfitFactor float64
	Expectancy   float64
}

// TradeStats computes win rate, best/worst, profit factor and expectancy
// over the trades' realized results. Results of exactly zero count toward
// Total but are neither wins nor losses.
//
// Expectancy is winRate*avgWin + (1-winRate)*avgLoss, with the averages
// taken over wins and losses only. The weighting is looser than the
// textbook definition; it is kept as the journal has always computed it
// so historical numbers stay stable.
func TradeStats(trades []journal.Trade) Stats {
	s := Stats{Total: len(trades)}
	if s.Total == 0 {
		return s
	}

	wins, losses := 0, 0
	var lossSum float64
	s.Best = trades[0].Result
	s.Worst = trades[0].Result
	for _, t := range trades {
		r := t.Result
		if r > s.Best {
			s.Best = r
		}
		if r < s.Worst {
			s.Worst = r
		}
		switch {
		case r > 0:
			wins++
			s.GrossWin += r
		case r < 0:
			losses++
			lossSum += r
		}
	}
	s.GrossLoss = -lossSum

	s.WinRate = float64(wins) / float64(s.Total)

	switch {
	case s.GrossLoss > 0:
		s.ProfitFactor = s.GrossWin / s.GrossLoss
	case s.GrossWin > 0:
		s.ProfitFactor = ProfitFactorCap
	}

	if wins > 0 {
		s.AvgWin = s.GrossWin / float64(wins)
	}
	if losses > 0 {
		s.AvgLoss = lossSum / float64(losses)
	}
	s.Expectancy = s.WinRate*s.AvgWin + (1-s.WinRate)*s.AvgLoss

	return s
}

// Net is the sum of realized results.
func Net(trades []journal.Trade) float64 {
	var net float64
	for _, t := range trades {
		net += t.Result
	}
	return net
}

// WinRateDays is the day-level win rate: calendar days with positive
// aggregate P/L over all logged days. Distinct from the per-trade win
// rate; the daily view uses this one.
func WinRateDays(logs []journal.DailyLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	wins := 0
	for _, l := range logs {
		if l.PL > 0 {
			wins++
		}
	}
	return float64(wins) / float64(len(logs))
}
