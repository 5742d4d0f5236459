package extract

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadXLSX reads the zip-based .xlsx export of the dataset and returns the raw
// rows of the named sheet. The column contract is identical to the
// spreadsheet-XML path; a missing sheet yields ErrMissingSection.
func ReadXLSX(path, sheet string) ([][]string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "extract: open xlsx")
	}

	s, ok := f.Sheet[sheet]
	if !ok {
		return nil, eris.Wrapf(ErrMissingSection, "sheet %q", sheet)
	}

	rows := make([][]string, 0, len(s.Rows))
	for _, row := range s.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.String()
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
