package parser

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
	"github.com/xuri/excelize/v2"
)

type excelizeBackend struct{}

// Excelize returns the backend built on github.com/xuri/excelize/v2.
// The used range comes from the sheet's <dimension> element, or from the
// bounds of the stored cells when the element is missing.
func Excelize() Backend {
	return excelizeBackend{}
}

func (excelizeBackend) Name() string { return "excelize" }

func (excelizeBackend) Open(data []byte) (Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	wb := &excelizeWorkbook{f: f, styles: make(map[int]bool)}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

type excelizeWorkbook struct {
	f        *excelize.File
	date1904 bool
	// styles caches whether a style ID carries a date number format.
	styles map[int]bool
}

func (w *excelizeWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

func (w *excelizeWorkbook) UsedRange(sheet string) (models.Range, bool, error) {
	dim, err := w.f.GetSheetDimension(sheet)
	if err != nil {
		return models.Range{}, false, err
	}
	if strings.TrimSpace(dim) == "" {
		rows, err := w.f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return models.Range{}, false, err
		}
		rng, ok := dataBounds(rows)
		return rng, ok, nil
	}
	rng, err := ParseRange(dim)
	if err != nil {
		return models.Range{}, false, err
	}
	return rng, true, nil
}

func (w *excelizeWorkbook) Cell(sheet, ref string) (models.CellValue, bool, error) {
	typ, err := w.f.GetCellType(sheet, ref)
	if err != nil {
		return models.Null(), false, err
	}
	raw, err := w.f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Null(), false, err
	}

	if raw == "" {
		return models.Null(), false, nil
	}

	switch typ {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), true, nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.Date(t), true, nil
		}
		return models.String(raw), true, nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.String(raw), true, nil
	default:
		// Numbers usually carry no type attribute.
		v := parseValue(raw)
		if n, ok := v.Float(); ok && w.isDateCell(sheet, ref) {
			if t, err := excelize.ExcelDateToTime(n, w.date1904); err == nil {
				return models.Date(t), true, nil
			}
		}
		return v, true, nil
	}
}

func (w *excelizeWorkbook) Close() error {
	return w.f.Close()
}

// isDateCell reports whether the cell's number format renders a date or time.
func (w *excelizeWorkbook) isDateCell(sheet, ref string) bool {
	styleID, err := w.f.GetCellStyle(sheet, ref)
	if err != nil || styleID == 0 {
		return false
	}
	if isDate, ok := w.styles[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := w.f.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateFormat(*style.CustomNumFmt)
		} else {
			isDate = isBuiltinDateFormat(style.NumFmt)
		}
	}
	w.styles[styleID] = isDate
	return isDate
}

// parseValue parses a raw cell string as a number.
// Returns a Number when the text is numeric, otherwise a String.
func parseValue(s string) models.CellValue {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.String(s)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseISODate parses the ISO 8601 text stored in t="d" cells.
func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
