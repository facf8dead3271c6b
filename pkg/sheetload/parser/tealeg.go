package parser

import (
	"fmt"

	"github.com/tealeg/xlsx"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

type tealegBackend struct{}

// Tealeg returns the backend built on github.com/tealeg/xlsx.
// The used range always starts at A1 and spans MaxRow x MaxCol, and empty
// cells are indistinguishable from absent ones.
func Tealeg() Backend {
	return tealegBackend{}
}

func (tealegBackend) Name() string { return "tealeg" }

func (tealegBackend) Open(data []byte) (Workbook, error) {
	f, err := xlsx.OpenBinary(data)
	if err != nil {
		return nil, err
	}
	return &tealegWorkbook{f: f}, nil
}

type tealegWorkbook struct {
	f *xlsx.File
}

func (w *tealegWorkbook) SheetNames() []string {
	names := make([]string, 0, len(w.f.Sheets))
	for _, sheet := range w.f.Sheets {
		names = append(names, sheet.Name)
	}
	return names
}

func (w *tealegWorkbook) UsedRange(sheet string) (models.Range, bool, error) {
	s, ok := w.f.Sheet[sheet]
	if !ok {
		return models.Range{}, false, fmt.Errorf("sheet %q not found", sheet)
	}
	if s.MaxRow == 0 || s.MaxCol == 0 {
		return models.Range{}, false, nil
	}
	return models.Range{EndRow: s.MaxRow - 1, EndCol: s.MaxCol - 1}, true, nil
}

func (w *tealegWorkbook) Cell(sheet, ref string) (models.CellValue, bool, error) {
	s, ok := w.f.Sheet[sheet]
	if !ok {
		return models.Null(), false, fmt.Errorf("sheet %q not found", sheet)
	}
	row, col, err := ParseCellRef(ref)
	if err != nil {
		return models.Null(), false, err
	}

	// Sheet.Cell grows the sheet, so read the rows directly.
	if row >= len(s.Rows) || s.Rows[row] == nil || col >= len(s.Rows[row].Cells) {
		return models.Null(), false, nil
	}
	cell := s.Rows[row].Cells[col]
	if cell == nil || cell.Value == "" {
		return models.Null(), false, nil
	}

	switch cell.Type() {
	case xlsx.CellTypeBool:
		return models.Bool(cell.Bool()), true, nil
	case xlsx.CellTypeNumeric:
		n, err := cell.Float()
		if err != nil {
			return models.String(cell.Value), true, nil
		}
		if isDateFormat(cell.GetNumberFormat()) {
			if t, err := cell.GetTime(w.f.Date1904); err == nil {
				return models.Date(t), true, nil
			}
		}
		return models.Number(n), true, nil
	case xlsx.CellTypeDate:
		if t, ok := parseISODate(cell.Value); ok {
			return models.Date(t), true, nil
		}
		return models.String(cell.Value), true, nil
	default:
		return models.String(cell.Value), true, nil
	}
}

func (w *tealegWorkbook) Close() error {
	return nil
}
