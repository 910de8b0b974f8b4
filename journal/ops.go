package journal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rustyeddy/fxjournal/pkg/id"
)

// Journal wraps a Store with the validated mutation operations. Every
// operation is a whole-collection read-modify-write; the computation
// packages only ever see the snapshots it returns.
type Journal struct {
	store Store
}

func New(store Store) *Journal {
	return &Journal{store: store}
}

func (j *Journal) Store() Store { return j.store }
func (j *Journal) Close() error { return j.store.Close() }

// AddDailyLog records one day's P/L. An entry for the same date is
// replaced, not merged.
func (j *Journal) AddDailyLog(date string, pl float64) error {
	if date == "" {
		return fmt.Errorf("daily log: date is required")
	}
	logs := j.store.DailyLogs()
	next := logs[:0:0]
	for _, l := range logs {
		if l.Date != date {
			next = append(next, l)
		}
	}
	next = append(next, DailyLog{Date: date, PL: pl})
	return j.store.SaveDailyLogs(next)
}

func (j *Journal) DeleteDailyLog(date string) error {
	logs := j.store.DailyLogs()
	next := logs[:0:0]
	for _, l := range logs {
		if l.Date != date {
			next = append(next, l)
		}
	}
	return j.store.SaveDailyLogs(next)
}

func (j *Journal) ClearDailyLogs() error {
	return j.store.SaveDailyLogs(nil)
}

// AddTrade validates and records a trade, assigns its ID and returns it.
// When the trade names a known strategy, that strategy's Trades count and
// matching outcome bucket are incremented.
func (j *Journal) AddTrade(t Trade) (Trade, error) {
	if t.Date == "" {
		return Trade{}, fmt.Errorf("trade: date is required")
	}
	if strings.TrimSpace(t.Pair) == "" {
		return Trade{}, fmt.Errorf("trade: pair is required")
	}
	if math.IsNaN(t.Result) || math.IsInf(t.Result, 0) {
		return Trade{}, fmt.Errorf("trade: result must be a number")
	}
	switch t.Outcome {
	case OutcomeNone, OutcomeTP1, OutcomeTP2, OutcomeBE, OutcomeSL:
	default:
		return Trade{}, fmt.Errorf("trade: unknown outcome %q", t.Outcome)
	}

	t.ID = id.New()
	t.Pair = strings.ToUpper(strings.TrimSpace(t.Pair))

	trades := append(j.store.Trades(), t)
	if err := j.store.SaveTrades(trades); err != nil {
		return Trade{}, err
	}

	if t.Strategy != "" {
		if err := j.bumpStrategy(t.Strategy, t.Outcome, +1); err != nil {
			return Trade{}, err
		}
	}
	return t, nil
}

// DeleteTrade removes a trade by ID. The referenced strategy's counters
// are decremented best-effort, floored at zero.
func (j *Journal) DeleteTrade(tradeID string) error {
	trades := j.store.Trades()
	next := trades[:0:0]
	var removed *Trade
	for i, t := range trades {
		if t.ID == tradeID {
			removed = &trades[i]
			continue
		}
		next = append(next, t)
	}
	if err := j.store.SaveTrades(next); err != nil {
		return err
	}
	if removed != nil && removed.Strategy != "" {
		return j.bumpStrategy(removed.Strategy, removed.Outcome, -1)
	}
	return nil
}

func (j *Journal) ClearTrades() error {
	return j.store.SaveTrades(nil)
}

// bumpStrategy adjusts the named strategy's tally by delta. A dangling
// name is not an error; the attribution is simply dropped.
func (j *Journal) bumpStrategy(name string, outcome Outcome, delta int) error {
	strats := j.store.Strategies()
	found := false
	for i := range strats {
		if !strings.EqualFold(strats[i].Name, name) {
			continue
		}
		found = true
		strats[i].Trades = clampCount(strats[i].Trades + delta)
		switch outcome {
		case OutcomeTP1:
			strats[i].TP1 = clampCount(strats[i].TP1 + delta)
		case OutcomeTP2:
			strats[i].TP2 = clampCount(strats[i].TP2 + delta)
		case OutcomeBE:
			strats[i].BE = clampCount(strats[i].BE + delta)
		case OutcomeSL:
			strats[i].SL = clampCount(strats[i].SL + delta)
		}
		break
	}
	if !found {
		return nil
	}
	return j.store.SaveStrategies(strats)
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// SaveStrategy creates or updates a strategy by case-insensitive name.
func (j *Journal) SaveStrategy(s Strategy) (Strategy, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return Strategy{}, fmt.Errorf("strategy: name is required")
	}
	if s.Trades <= 0 {
		return Strategy{}, fmt.Errorf("strategy: trades must be positive")
	}
	if s.TP1 < 0 || s.TP2 < 0 || s.BE < 0 || s.SL < 0 {
		return Strategy{}, fmt.Errorf("strategy: outcome counts must be non-negative")
	}
	if sum := s.TP1 + s.TP2 + s.BE + s.SL; sum > s.Trades {
		return Strategy{}, fmt.Errorf("strategy: outcome counts (%d) exceed trade count (%d)", sum, s.Trades)
	}

	strats := j.store.Strategies()
	for i := range strats {
		if strings.EqualFold(strats[i].Name, s.Name) {
			s.ID = strats[i].ID
			strats[i] = s
			return s, j.store.SaveStrategies(strats)
		}
	}
	s.ID = id.New()
	return s, j.store.SaveStrategies(append(strats, s))
}

func (j *Journal) DeleteStrategy(strategyID string) error {
	strats := j.store.Strategies()
	next := strats[:0:0]
	for _, s := range strats {
		if s.ID != strategyID {
			next = append(next, s)
		}
	}
	return j.store.SaveStrategies(next)
}

func (j *Journal) ClearStrategies() error {
	return j.store.SaveStrategies(nil)
}

// SaveEvaluation upserts the evaluation for its trade. Any prior record
// for the same trade is replaced. CreatedAt is stamped here when unset.
func (j *Journal) SaveEvaluation(e Evaluation) error {
	if e.TradeID == "" {
		return fmt.Errorf("evaluation: trade id is required")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	evals := j.store.Evaluations()
	next := evals[:0:0]
	for _, ev := range evals {
		if ev.TradeID != e.TradeID {
			next = append(next, ev)
		}
	}
	return j.store.SaveEvaluations(append(next, e))
}
