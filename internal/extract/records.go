// Package extract turns the city's spreadsheet export of film locations into
// a validated, ordered record set. Row-level problems are counted and skipped;
// only document-level problems surface as errors.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/cityscope/filmmap/internal/model"
)

// The export carries three header/metadata rows before the data and at least
// thirteen cells per complete data row.
const (
	headerRows = 3
	minCells   = 13
)

// Column positions fixed by the published export layout.
const (
	colFilm         = 0
	colLocationText = 8
	colLatitude     = 9
	colLongitude    = 10
	colBorough      = 11
	colNeighborhood = 12
)

// rowView wraps one raw row so nothing outside this file deals in cell indices.
type rowView []string

func (r rowView) cell(i int) string {
	if i >= len(r) {
		return ""
	}
	return r[i]
}

func (r rowView) film() string         { return r.cell(colFilm) }
func (r rowView) locationText() string { return r.cell(colLocationText) }
func (r rowView) latitude() string     { return r.cell(colLatitude) }
func (r rowView) longitude() string    { return r.cell(colLongitude) }
func (r rowView) borough() string      { return r.cell(colBorough) }
func (r rowView) neighborhood() string { return r.cell(colNeighborhood) }

// Stats counts row-level outcomes of one extraction pass. Short rows and rows
// with malformed numbers are both skipped but counted separately.
type Stats struct {
	Accepted         int
	ShortRows        int // fewer than minCells cells
	BadNumberRows    int // non-empty coordinate text that is not a finite number
	MissingFieldRows int // film or a coordinate absent
}

// Skipped is the total number of rows dropped during extraction.
func (s Stats) Skipped() int {
	return s.ShortRows + s.BadNumberRows + s.MissingFieldRows
}

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// cleanDisplayText strips bracketed markup from a location description:
// each <...> sequence becomes a comma-space separator, a resulting ", ," is
// collapsed, and leading/trailing separators are trimmed.
func cleanDisplayText(s string) string {
	s = markupPattern.ReplaceAllString(s, ", ")
	s = strings.ReplaceAll(s, ", ,", ", ")
	return strings.Trim(s, ", ")
}

// parseCoord parses a coordinate cell. Empty text means the coordinate is
// absent; non-empty text that does not parse to a finite float is malformed.
func parseCoord(s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, eris.Errorf("extract: non-finite coordinate %q", s)
	}
	return v, true, nil
}

func orNA(s string) string {
	if s == "" {
		return model.NotAvailable
	}
	return s
}

// Records validates raw worksheet rows into the ordered location set. The
// first three rows are header/metadata and are skipped unconditionally; a row
// is accepted only when it has both coordinates and a non-sentinel film title.
// Zero accepted rows yields ErrEmptyResult.
func Records(rows [][]string) ([]model.Location, Stats, error) {
	var stats Stats
	var out []model.Location

	if len(rows) > headerRows {
		for _, raw := range rows[headerRows:] {
			row := rowView(raw)
			if len(row) < minCells {
				stats.ShortRows++
				continue
			}

			lat, latOK, latErr := parseCoord(row.latitude())
			lon, lonOK, lonErr := parseCoord(row.longitude())
			if latErr != nil || lonErr != nil {
				stats.BadNumberRows++
				continue
			}

			film := orNA(row.film())
			if !latOK || !lonOK || film == model.NotAvailable {
				stats.MissingFieldRows++
				continue
			}

			out = append(out, model.Location{
				Film:         film,
				DisplayText:  cleanDisplayText(row.locationText()),
				Latitude:     lat,
				Longitude:    lon,
				Borough:      orNA(row.borough()),
				Neighborhood: orNA(row.neighborhood()),
			})
			stats.Accepted++
		}
	}

	if len(out) == 0 {
		return nil, stats, ErrEmptyResult
	}

	if stats.Skipped() > 0 {
		zap.L().Warn("skipped rows during extraction",
			zap.Int("accepted", stats.Accepted),
			zap.Int("short_rows", stats.ShortRows),
			zap.Int("bad_number_rows", stats.BadNumberRows),
			zap.Int("missing_field_rows", stats.MissingFieldRows),
		)
	}

	return out, stats, nil
}
