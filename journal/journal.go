// journal/journal.go
package journal

import "time"

// Outcome is the categorical result of a trade relative to its planned
// exit levels.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeTP1  Outcome = "TP1"
	OutcomeTP2  Outcome = "TP2"
	OutcomeBE   Outcome = "BE"
	OutcomeSL   Outcome = "SL"
)

// DailyLog is one day's aggregate P/L. Dates are ISO "YYYY-MM-DD" strings;
// there is at most one entry per date.
type DailyLog struct {
	Date string  `json:"date"`
	PL   float64 `json:"pl"`
}

// Trade is a single closed trade. Strategy references a Strategy by name;
// the reference is lookup-only and may dangle after a rename or delete.
type Trade struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Pair     string  `json:"pair"`
	Type     string  `json:"type,omitempty"` // long, short, or a free-form tag
	Strategy string  `json:"strategy,omitempty"`
	Outcome  Outcome `json:"outcome,omitempty"`
	Size     float64 `json:"size,omitempty"`
	Result   float64 `json:"result"`
	Pips     float64 `json:"pips,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// Strategy tallies trade outcomes for one named setup. Name is unique
// case-insensitively. The outcome buckets need not sum to Trades; rates
// divide by Trades directly.
type Strategy struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Trades int    `json:"trades"`
	TP1    int    `json:"tp1"`
	TP2    int    `json:"tp2"`
	BE     int    `json:"be"`
	SL     int    `json:"sl"`
	Notes  string `json:"notes,omitempty"`
}

// Evaluation records the decision quality of one trade. At most one per
// TradeID; saving replaces any prior record.
type Evaluation struct {
	TradeID               string    `json:"tradeId"`
	Score                 float64   `json:"score"`
	FollowedPlan          bool      `json:"followedPlan"`
	HadClearSetup         bool      `json:"hadClearSetup"`
	RiskOk                bool      `json:"riskOk"`
	WaitedForConfirmation bool      `json:"waitedForConfirmation"`
	RevengeTrade          bool      `json:"revengeTrade"`
	Overtraded            bool      `json:"overtraded"`
	Notes                 string    `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
}

// Store persists the four journal collections. Each collection is read and
// replaced as a whole; there are no cross-collection transactions. Loads
// never fail the caller: missing or malformed data comes back as an empty
// slice.
type Store interface {
	DailyLogs() []DailyLog
	SaveDailyLogs([]DailyLog) error

	Trades() []Trade
	SaveTrades([]Trade) error

	Strategies() []Strategy
	SaveStrategies([]Strategy) error

	Evaluations() []Evaluation
	SaveEvaluations([]Evaluation) error

	Close() error
}
