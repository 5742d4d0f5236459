package extract

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/cityscope/filmmap/internal/model"
)

// Loader owns the record set for the process. It reads the configured
// document once and hands out the same slice until the file on disk changes;
// callers must treat the returned records as read-only.
type Loader struct {
	path      string
	worksheet string

	mu      sync.Mutex
	records []model.Location
	stats   Stats
	modTime time.Time
	size    int64
	loaded  bool
}

// NewLoader creates a Loader for the document at path. The worksheet name is
// used for both the spreadsheet-XML and the .xlsx form of the export.
func NewLoader(path, worksheet string) *Loader {
	return &Loader{path: path, worksheet: worksheet}
}

// Load returns the validated record set, re-reading the source only when its
// modification time or size has changed since the last read. Any error means
// the data set is unavailable.
func (l *Loader) Load() ([]model.Location, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := os.Stat(l.path)
	if err != nil {
		return nil, eris.Wrap(err, "extract: stat source")
	}
	if l.loaded && info.ModTime().Equal(l.modTime) && info.Size() == l.size {
		return l.records, nil
	}

	records, stats, err := l.read()
	if err != nil {
		return nil, err
	}

	l.records = records
	l.stats = stats
	l.modTime = info.ModTime()
	l.size = info.Size()
	l.loaded = true

	zap.L().Info("location data loaded",
		zap.String("path", l.path),
		zap.Int("records", len(records)),
		zap.Int("skipped", stats.Skipped()),
	)
	return records, nil
}

// Stats returns the row counters from the most recent successful load.
func (l *Loader) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *Loader) read() ([]model.Location, Stats, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".xlsx":
		rows, err = ReadXLSX(l.path, l.worksheet)
	default:
		var f *os.File
		f, err = os.Open(l.path)
		if err != nil {
			return nil, Stats{}, eris.Wrap(err, "extract: open source")
		}
		defer f.Close() //nolint:errcheck
		rows, err = ParseSpreadsheetML(f, l.worksheet)
	}
	if err != nil {
		return nil, Stats{}, err
	}

	return Records(rows)
}
