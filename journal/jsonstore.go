package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection file names inside the data directory.
const (
	dailyFile      = "daily_logs.json"
	tradesFile     = "trades.json"
	strategiesFile = "strategies.json"
	evalsFile      = "evaluations.json"
)

// JSONStore keeps each collection in its own JSON file under a data
// directory. A save rewrites the file through a temp-file rename so a
// reader never sees a partial collection.
type JSONStore struct {
	dir string
}

func NewJSON(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) DailyLogs() []DailyLog {
	var out []DailyLog
	readCollection(filepath.Join(s.dir, dailyFile), &out)
	return out
}

func (s *JSONStore) SaveDailyLogs(logs []DailyLog) error {
	return writeCollection(filepath.Join(s.dir, dailyFile), emptied(logs))
}

func (s *JSONStore) Trades() []Trade {
	var out []Trade
	readCollection(filepath.Join(s.dir, tradesFile), &out)
	return out
}

func (s *JSONStore) SaveTrades(trades []Trade) error {
	return writeCollection(filepath.Join(s.dir, tradesFile), emptied(trades))
}

func (s *JSONStore) Strategies() []Strategy {
	var out []Strategy
	readCollection(filepath.Join(s.dir, strategiesFile), &out)
	return out
}

func (s *JSONStore) SaveStrategies(strats []Strategy) error {
	return writeCollection(filepath.Join(s.dir, strategiesFile), emptied(strats))
}

func (s *JSONStore) Evaluations() []Evaluation {
	var out []Evaluation
	readCollection(filepath.Join(s.dir, evalsFile), &out)
	return out
}

func (s *JSONStore) SaveEvaluations(evals []Evaluation) error {
	return writeCollection(filepath.Join(s.dir, evalsFile), emptied(evals))
}

func (s *JSONStore) Close() error { return nil }

// readCollection leaves dst untouched on any error: a missing or corrupt
// file reads as an empty collection.
func readCollection(path string, dst any) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = json.Unmarshal(data, dst)
}

func writeCollection(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write collection: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace collection: %w", err)
	}
	return nil
}

// emptied normalizes a nil slice so cleared collections serialize as []
// instead of null.
func emptied[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
