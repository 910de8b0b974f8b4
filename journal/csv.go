// journal/csv.go
package journal

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// DailyExportRow is one line of the daily export: the day's P/L plus the
// running balance computed by the caller.
type DailyExportRow struct {
	Date    string
	PL      float64
	Balance float64
}

// WriteDailyCSV writes the daily view as date,daily_pl,balance.
//
// Fields are comma-joined without quoting; commas inside values are
// replaced with spaces. The format is lossy for free text and kept that
// way for compatibility with the existing exports.
func WriteDailyCSV(w io.Writer, rows []DailyExportRow) error {
	if _, err := fmt.Fprintln(w, "date,daily_pl,balance"); err != nil {
		return err
	}
	for _, r := range rows {
		line := strings.Join([]string{r.Date, money(r.PL), money(r.Balance)}, ",")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteTradesCSV writes the trade view as
// date,pair,type,strategy,outcome,size,result,pips,notes, ordered by date
// ascending. Zero-valued optional fields (size, pips) render empty.
func WriteTradesCSV(w io.Writer, trades []Trade) error {
	sorted := make([]Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	if _, err := fmt.Fprintln(w, "date,pair,type,strategy,outcome,size,result,pips,notes"); err != nil {
		return err
	}
	for _, t := range sorted {
		line := strings.Join([]string{
			t.Date,
			strings.ToUpper(t.Pair),
			sanitize(t.Type),
			sanitize(t.Strategy),
			string(t.Outcome),
			optional(t.Size),
			money(t.Result),
			optional(t.Pips),
			sanitize(t.Notes),
		}, ",")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func money(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

func optional(x float64) string {
	if x == 0 {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, ",", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
