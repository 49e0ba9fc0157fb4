package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/repton/statespace"
)

// sheetName is the single worksheet WriteXLSX fills.
const sheetName = "Sheet1"

// WriteXLSX writes m as a spreadsheet: state labels in the first row and
// column, rates in the body, all in the Order of the state set.
// Returns ErrNilMatrix when m is nil.
func WriteXLSX(path string, m *statespace.Matrix[float64]) error {
	if m == nil {
		return ErrNilMatrix
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	states := m.States()
	for i, origin := range states {
		label, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("render: label cell for row %d: %w", i, err)
		}
		if err = f.SetCellValue(sheetName, label, origin.String()); err != nil {
			return fmt.Errorf("render: set row label %d: %w", i, err)
		}
		header, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return fmt.Errorf("render: header cell for column %d: %w", i, err)
		}
		if err = f.SetCellValue(sheetName, header, origin.String()); err != nil {
			return fmt.Errorf("render: set column header %d: %w", i, err)
		}
	}
	for i, origin := range states {
		for j, target := range states {
			rate := m.At(origin, target)
			if rate == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+2, i+2)
			if err != nil {
				return fmt.Errorf("render: cell (%d,%d): %w", i, j, err)
			}
			if err = f.SetCellValue(sheetName, cell, rate); err != nil {
				return fmt.Errorf("render: set cell (%d,%d): %w", i, j, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// WriteCSV writes m to w as CSV with the same layout as WriteXLSX:
// a header row of state labels, then one row per origin state with its
// label followed by the rates.
func WriteCSV(w io.Writer, m *statespace.Matrix[float64]) error {
	if m == nil {
		return ErrNilMatrix
	}
	cw := csv.NewWriter(w)
	states := m.States()

	header := make([]string, len(states)+1)
	for j, target := range states {
		header[j+1] = target.String()
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("render: write csv header: %w", err)
	}

	row := make([]string, len(states)+1)
	for _, origin := range states {
		row[0] = origin.String()
		for j, target := range states {
			row[j+1] = strconv.FormatFloat(m.At(origin, target), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("render: write csv row %s: %w", origin, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
