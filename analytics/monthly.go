package analytics

import (
	"sort"

	"github.com/rustyeddy/fxjournal/journal"
)

// MonthStat is one calendar month's aggregate.
type MonthStat struct {
	Month string // "YYYY-MM"
	Sum   float64
	Count int
}

// MonthlyAggregate buckets daily logs by year-month (the first seven
// characters of the ISO date) and orders the buckets ascending. Entries
// with an empty date are skipped.
func MonthlyAggregate(logs []journal.DailyLog) []MonthStat {
	byMonth := map[string]*MonthStat{}
	for _, l := range logs {
		if l.Date == "" {
			continue
		}
		ym := l.Date
		if len(ym) > 7 {
			ym = ym[:7]
		}
		m, ok := byMonth[ym]
		if !ok {
			m = &MonthStat{Month: ym}
			byMonth[ym] = m
		}
		m.Sum += l.PL
		m.Count++
	}

	out := make([]MonthStat, 0, len(byMonth))
	for _, m := range byMonth {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// BestMonth returns the month with the highest sum. Ties keep the
// earliest month. ok is false when there are no months.
func BestMonth(months []MonthStat) (best MonthStat, ok bool) {
	if len(months) == 0 {
		return MonthStat{}, false
	}
	best = months[0]
	for _, m := range months[1:] {
		if m.Sum > best.Sum {
			best = m
		}
	}
	return best, true
}

// WorstMonth returns the month with the lowest sum. Ties keep the
// earliest month.
func WorstMonth(months []MonthStat) (worst MonthStat, ok bool) {
	if len(months) == 0 {
		return MonthStat{}, false
	}
	worst = months[0]
	for _, m := range months[1:] {
		if m.Sum < worst.Sum {
			worst = m
		}
	}
	return worst, true
}

// LastNTotal sums the most recent n months, or all of them when fewer
// exist.
func LastNTotal(months []MonthStat, n int) float64 {
	if n > len(months) {
		n = len(months)
	}
	total := 0.0
	for _, m := range months[len(months)-n:] {
		total += m.Sum
	}
	return total
}
