package analytics

import "math"

// Drawdown is the signed distance of equity below the running peak.
// DD is always <= 0.
type Drawdown struct {
	Date string
	DD   float64
}

// DrawdownSeries derives the drawdown at each curve point. The peak is
// seeded at -Inf, so the first point always reads as zero drawdown and a
// monotonically rising curve stays at zero throughout. The curve must be
// in the chronological order BuildCurve produces.
func DrawdownSeries(curve []Point) []Drawdown {
	peak := math.Inf(-1)
	out := make([]Drawdown, 0, len(curve))
	for _, p := range curve {
		peak = math.Max(peak, p.Equity)
		out = append(out, Drawdown{Date: p.Date, DD: p.Equity - peak})
	}
	return out
}

// MaxDrawdown is the deepest value of the series, or 0 when empty.
func MaxDrawdown(series []Drawdown) float64 {
	m := 0.0
	for _, p := range series {
		m = math.Min(m, p.DD)
	}
	return m
}
