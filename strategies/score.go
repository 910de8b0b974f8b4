// Package strategies scores and analyzes strategy outcome tallies.
package strategies

import (
	"sort"

	"github.com/rustyeddy/fxjournal/journal"
)

// Score ranks a strategy by its outcome mix: TP2 weighs most, TP1 half,
// BE a little, SL counts against. The value is only meaningful relative
// to other strategies; it is not bounded.
func Score(s journal.Strategy) float64 {
	t := s.Trades
	if t < 1 {
		t = 1
	}
	return (float64(s.TP2)*2 + float64(s.TP1) + float64(s.BE)*0.2 - float64(s.SL)*1.5) / float64(t)
}

// Rates holds each outcome bucket as a fraction of total trades.
type Rates struct {
	TP1 float64
	TP2 float64
	BE  float64
	SL  float64
}

// OutcomeRates divides each bucket by the trade count. A strategy with no
// trades rates zero across the board.
func OutcomeRates(s journal.Strategy) Rates {
	if s.Trades <= 0 {
		return Rates{}
	}
	t := float64(s.Trades)
	return Rates{
		TP1: float64(s.TP1) / t,
		TP2: float64(s.TP2) / t,
		BE:  float64(s.BE) / t,
		SL:  float64(s.SL) / t,
	}
}

// Rank orders strategies by descending score, stable so equal scores keep
// their stored order.
func Rank(strats []journal.Strategy) []journal.Strategy {
	out := make([]journal.Strategy, len(strats))
	copy(out, strats)
	sort.SliceStable(out, func(i, j int) bool { return Score(out[i]) > Score(out[j]) })
	return out
}
