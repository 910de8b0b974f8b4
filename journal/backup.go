package journal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// Snapshot is a full copy of the four collections, used for backup and
// restore. The on-disk form is xz-compressed JSON.
type Snapshot struct {
	DailyLogs   []DailyLog   `json:"dailyLogs"`
	Trades      []Trade      `json:"trades"`
	Strategies  []Strategy   `json:"strategies"`
	Evaluations []Evaluation `json:"evaluations"`
}

// WriteBackup captures the store's current state and writes it to w.
func WriteBackup(store Store, w io.Writer) error {
	snap := Snapshot{
		DailyLogs:   store.DailyLogs(),
		Trades:      store.Trades(),
		Strategies:  store.Strategies(),
		Evaluations: store.Evaluations(),
	}

	xw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("open xz writer: %w", err)
	}
	if err := json.NewEncoder(xw).Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return xw.Close()
}

// ReadBackup decodes a snapshot previously written by WriteBackup.
func ReadBackup(r io.Reader) (Snapshot, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open xz reader: %w", err)
	}
	var snap Snapshot
	if err := json.NewDecoder(xr).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Restore replaces every collection in the store with the snapshot's.
// The four saves are independent; a failure leaves earlier collections
// already replaced, same as any other partial multi-collection write.
func Restore(store Store, snap Snapshot) error {
	if err := store.SaveDailyLogs(snap.DailyLogs); err != nil {
		return err
	}
	if err := store.SaveTrades(snap.Trades); err != nil {
		return err
	}
	if err := store.SaveStrategies(snap.Strategies); err != nil {
		return err
	}
	return store.SaveEvaluations(snap.Evaluations)
}

// ImportDailyZip extracts a zip archive of daily CSV exports and upserts
// every row found in date,daily_pl,... files. Returns the number of rows
// imported.
func ImportDailyZip(j *Journal, zipPath string) (int, error) {
	dir, err := os.MkdirTemp("", "fxjournal-import")
	if err != nil {
		return 0, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(zipPath, dir); err != nil {
		return 0, fmt.Errorf("extract %s: %w", zipPath, err)
	}

	imported := 0
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".csv") {
			return err
		}
		n, err := importDailyCSV(j, path)
		imported += n
		return err
	})
	return imported, err
}

func importDailyCSV(j *Journal, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if len(header) < 2 || header[0] != "date" || header[1] != "daily_pl" {
		return 0, fmt.Errorf("%s: not a daily export", path)
	}

	n := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, fmt.Errorf("read %s: %w", path, err)
		}
		if len(row) < 2 || row[0] == "" {
			continue
		}
		pl, _ := strconv.ParseFloat(row[1], 64)
		if err := j.AddDailyLog(row[0], pl); err != nil {
			return n, err
		}
		n++
	}
}
