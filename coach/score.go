// Package coach scores trade decision quality and classifies trades into
// disciplined and undisciplined cohorts, independent of financial
// outcome.
package coach

import (
	"math"
	"time"

	"github.com/rustyeddy/fxjournal/journal"
)

// Flags are the behavioral inputs to the decision-quality rubric.
type Flags struct {
	FollowedPlan          bool
	HadClearSetup         bool
	RiskOk                bool
	WaitedForConfirmation bool
	RevengeTrade          bool
	Overtraded            bool
}

// DefaultFlags is the evaluation form's starting state: the positive
// habits assumed true, the destructive ones false.
func DefaultFlags() Flags {
	return Flags{
		FollowedPlan:          true,
		HadClearSetup:         true,
		RiskOk:                true,
		WaitedForConfirmation: true,
	}
}

// DecisionScore grades a trade's decision quality on a 0-10 rubric:
// base 5, plus 2 each for following the plan and a clear setup, plus 1.5
// each for controlled risk and waiting for confirmation, minus 3 for a
// revenge trade and 2 for overtrading. Clamped to [0,10] and rounded to
// one decimal.
func DecisionScore(f Flags) float64 {
	s := 5.0
	if f.FollowedPlan {
		s += 2
	}
	if f.HadClearSetup {
		s += 2
	}
	if f.RiskOk {
		s += 1.5
	}
	if f.WaitedForConfirmation {
		s += 1.5
	}
	if f.RevengeTrade {
		s -= 3
	}
	if f.Overtraded {
		s -= 2
	}
	s = math.Max(0, math.Min(10, s))
	return math.Round(s*10) / 10
}

// NewEvaluation builds the stored record for a trade's evaluation.
func NewEvaluation(tradeID string, f Flags, notes string) journal.Evaluation {
	return journal.Evaluation{
		TradeID:               tradeID,
		Score:                 DecisionScore(f),
		FollowedPlan:          f.FollowedPlan,
		HadClearSetup:         f.HadClearSetup,
		RiskOk:                f.RiskOk,
		WaitedForConfirmation: f.WaitedForConfirmation,
		RevengeTrade:          f.RevengeTrade,
		Overtraded:            f.Overtraded,
		Notes:                 notes,
		CreatedAt:             time.Now().UTC(),
	}
}
