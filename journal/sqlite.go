package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a Store backed by a single SQLite database file. Each save
// replaces its whole table inside one transaction, matching the
// whole-collection semantics of the Store contract.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) DailyLogs() []DailyLog {
	rows, err := s.db.Query(`SELECT date, pl FROM daily_logs`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []DailyLog
	for rows.Next() {
		var l DailyLog
		if err := rows.Scan(&l.Date, &l.PL); err != nil {
			return nil
		}
		out = append(out, l)
	}
	if rows.Err() != nil {
		return nil
	}
	return out
}

func (s *SQLite) SaveDailyLogs(logs []DailyLog) error {
	return s.replace(`daily_logs`, func(tx *sql.Tx) error {
		for _, l := range logs {
			if _, err := tx.Exec(`INSERT INTO daily_logs (date, pl) VALUES (?, ?)`, l.Date, l.PL); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLite) Trades() []Trade {
	rows, err := s.db.Query(`
		SELECT trade_id, date, pair, type, strategy, outcome, size, result, pips, notes
		FROM trades`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Trade
	for rows.Next() {
		var t Trade
		if err := rows.Scan(
			&t.ID, &t.Date, &t.Pair, &t.Type, &t.Strategy, &t.Outcome,
			&t.Size, &t.Result, &t.Pips, &t.Notes,
		); err != nil {
			return nil
		}
		out = append(out, t)
	}
	if rows.Err() != nil {
		return nil
	}
	return out
}

func (s *SQLite) SaveTrades(trades []Trade) error {
	return s.replace(`trades`, func(tx *sql.Tx) error {
		for _, t := range trades {
			if _, err := tx.Exec(`
				INSERT INTO trades
				(trade_id, date, pair, type, strategy, outcome, size, result, pips, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Date, t.Pair, t.Type, t.Strategy, string(t.Outcome),
				t.Size, t.Result, t.Pips, t.Notes,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLite) Strategies() []Strategy {
	rows, err := s.db.Query(`
		SELECT strategy_id, name, trades, tp1, tp2, be, sl, notes
		FROM strategies`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Strategy
	for rows.Next() {
		var st Strategy
		if err := rows.Scan(&st.ID, &st.Name, &st.Trades, &st.TP1, &st.TP2, &st.BE, &st.SL, &st.Notes); err != nil {
			return nil
		}
		out = append(out, st)
	}
	if rows.Err() != nil {
		return nil
	}
	return out
}

func (s *SQLite) SaveStrategies(strats []Strategy) error {
	return s.replace(`strategies`, func(tx *sql.Tx) error {
		for _, st := range strats {
			if _, err := tx.Exec(`
				INSERT INTO strategies
				(strategy_id, name, trades, tp1, tp2, be, sl, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				st.ID, st.Name, st.Trades, st.TP1, st.TP2, st.BE, st.SL, st.Notes,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLite) Evaluations() []Evaluation {
	rows, err := s.db.Query(`
		SELECT trade_id, score, followed_plan, had_clear_setup, risk_ok,
		       waited_for_confirmation, revenge_trade, overtraded, notes, created_at
		FROM evaluations`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var out []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(
			&e.TradeID, &e.Score, &e.FollowedPlan, &e.HadClearSetup, &e.RiskOk,
			&e.WaitedForConfirmation, &e.RevengeTrade, &e.Overtraded, &e.Notes, &e.CreatedAt,
		); err != nil {
			return nil
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil
	}
	return out
}

func (s *SQLite) SaveEvaluations(evals []Evaluation) error {
	return s.replace(`evaluations`, func(tx *sql.Tx) error {
		for _, e := range evals {
			if _, err := tx.Exec(`
				INSERT INTO evaluations
				(trade_id, score, followed_plan, had_clear_setup, risk_ok,
				 waited_for_confirmation, revenge_trade, overtraded, notes, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				e.TradeID, e.Score, e.FollowedPlan, e.HadClearSetup, e.RiskOk,
				e.WaitedForConfirmation, e.RevengeTrade, e.Overtraded, e.Notes, e.CreatedAt,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// replace clears a table and reinserts the new collection atomically.
func (s *SQLite) replace(table string, insert func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		tx.Rollback()
		return err
	}
	if err := insert(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
