// Package mapper turns a decoded cell grid into header-keyed records.
package mapper

import (
	"strings"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// MapRecords treats grid row 0 as the header row and maps every later row
// into a record. It fails with *errs.MappingError only when the grid has no
// rows; a header-only grid yields empty Rows and Records.
func MapRecords(grid *models.CellGrid) (*models.Mapping, error) {
	if grid.RowCount() == 0 {
		return nil, &errs.MappingError{Err: errs.ErrNoHeaderRow}
	}

	headers := Headers(grid.Row(0))

	dataRows := grid.RowCount() - 1
	rows := make([]models.RawRow, 0, dataRows)
	records := make([]models.Record, 0, dataRows)
	for r := 1; r < grid.RowCount(); r++ {
		row := models.RawRow(grid.Row(r))
		rows = append(rows, row)
		records = append(records, Zip(headers, row))
	}

	return &models.Mapping{
		Headers: headers,
		Rows:    rows,
		Records: records,
	}, nil
}

// Headers converts raw header cells to trimmed strings. Null cells become "".
func Headers(cells []models.CellValue) models.HeaderRow {
	headers := make(models.HeaderRow, len(cells))
	for i, cell := range cells {
		headers[i] = NormalizeHeader(cell)
	}
	return headers
}

// NormalizeHeader returns the trimmed string form of a header cell.
func NormalizeHeader(cell models.CellValue) string {
	return strings.TrimSpace(cell.String())
}

// Zip pairs headers[i] with row[i]. A row shorter than headers fills the
// remaining keys with Null; values beyond len(headers) are dropped. When two
// headers are equal the later column wins.
func Zip(headers models.HeaderRow, row models.RawRow) models.Record {
	record := make(models.Record, len(headers))
	for i, header := range headers {
		if i < len(row) {
			record[header] = row[i]
		} else {
			record[header] = models.Null()
		}
	}
	return record
}
