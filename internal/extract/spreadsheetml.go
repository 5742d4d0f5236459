package extract

import (
	"encoding/xml"
	"io"

	"github.com/rotisserie/eris"
)

// Shapes for the 2003 SpreadsheetML dialect (namespace
// urn:schemas-microsoft-com:office:spreadsheet). Only the elements the row
// contract needs are mapped; everything else in the document is ignored.
type xmlWorkbook struct {
	Worksheets []xmlWorksheet `xml:"urn:schemas-microsoft-com:office:spreadsheet Worksheet"`
}

type xmlWorksheet struct {
	Name   string     `xml:"urn:schemas-microsoft-com:office:spreadsheet Name,attr"`
	Tables []xmlTable `xml:"urn:schemas-microsoft-com:office:spreadsheet Table"`
}

type xmlTable struct {
	Rows []xmlRow `xml:"urn:schemas-microsoft-com:office:spreadsheet Row"`
}

type xmlRow struct {
	Cells []xmlCell `xml:"urn:schemas-microsoft-com:office:spreadsheet Cell"`
}

type xmlCell struct {
	Data string `xml:"urn:schemas-microsoft-com:office:spreadsheet Data"`
}

// ParseSpreadsheetML reads a spreadsheet-XML document and returns the raw rows
// of the worksheet with the given name, each row as its cells' text payloads.
// A missing worksheet or data table yields ErrMissingSection.
func ParseSpreadsheetML(r io.Reader, worksheet string) ([][]string, error) {
	var wb xmlWorkbook
	if err := xml.NewDecoder(r).Decode(&wb); err != nil {
		return nil, eris.Wrap(err, "extract: decode spreadsheet xml")
	}

	for _, ws := range wb.Worksheets {
		if ws.Name != worksheet {
			continue
		}
		if len(ws.Tables) == 0 {
			return nil, eris.Wrapf(ErrMissingSection, "worksheet %q has no table", worksheet)
		}

		table := ws.Tables[0]
		rows := make([][]string, 0, len(table.Rows))
		for _, row := range table.Rows {
			cells := make([]string, len(row.Cells))
			for j, cell := range row.Cells {
				cells[j] = cell.Data
			}
			rows = append(rows, cells)
		}
		return rows, nil
	}

	return nil, eris.Wrapf(ErrMissingSection, "worksheet %q", worksheet)
}
