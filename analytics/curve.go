// Package analytics derives equity curves, drawdown, monthly rollups,
// trade statistics and advisory messages from journal records. Every
// function is pure: inputs are borrowed snapshots and outputs are new
// values.
package analytics

import (
	"sort"

	"github.com/rustyeddy/fxjournal/journal"
)

// Point is one step of the equity curve.
type Point struct {
	Date   string
	PL     float64
	Equity float64
}

// BuildCurve converts daily logs into a chronologically ordered equity
// curve. The input order does not matter; entries are stable-sorted by
// date (ISO dates compare lexicographically). Equity starts at
// startingBalance and accumulates each day's P/L.
func BuildCurve(logs []journal.DailyLog, startingBalance float64) []Point {
	sorted := make([]journal.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	curve := make([]Point, 0, len(sorted))
	equity := startingBalance
	for _, l := range sorted {
		equity += l.PL
		curve = append(curve, Point{Date: l.Date, PL: l.PL, Equity: equity})
	}
	return curve
}

// LastEquity returns the final equity of the curve, or the starting
// balance when the curve is empty.
func LastEquity(curve []Point, startingBalance float64) float64 {
	if len(curve) == 0 {
		return startingBalance
	}
	return curve[len(curve)-1].Equity
}
