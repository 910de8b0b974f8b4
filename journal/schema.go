// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS daily_logs (
	date TEXT PRIMARY KEY,
	pl REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	date TEXT NOT NULL,
	pair TEXT NOT NULL,
	type TEXT NOT NULL,
	strategy TEXT NOT NULL,
	outcome TEXT NOT NULL,
	size REAL NOT NULL,
	result REAL NOT NULL,
	pips REAL NOT NULL,
	notes TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS strategies (
	strategy_id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	trades INTEGER NOT NULL,
	tp1 INTEGER NOT NULL,
	tp2 INTEGER NOT NULL,
	be INTEGER NOT NULL,
	sl INTEGER NOT NULL,
	notes TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS evaluations (
	trade_id TEXT PRIMARY KEY,
	score REAL NOT NULL,
	followed_plan INTEGER NOT NULL,
	had_clear_setup INTEGER NOT NULL,
	risk_ok INTEGER NOT NULL,
	waited_for_confirmation INTEGER NOT NULL,
	revenge_trade INTEGER NOT NULL,
	overtraded INTEGER NOT NULL,
	notes TEXT NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(date);
`
