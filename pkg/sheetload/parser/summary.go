package parser

import (
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// Summary describes how much of a decoded grid is populated.
type Summary struct {
	// Rows is the grid row count, header included.
	Rows int `json:"rows"`
	// Cols is the grid column count.
	Cols int `json:"cols"`
	// NonEmptyCells counts cells that are not null.
	NonEmptyCells int `json:"non_empty_cells"`
	// Density is NonEmptyCells divided by Rows*Cols.
	Density float64 `json:"density"`
	// DataRange is the bounding box of non-null cells in sheet coordinates
	// (e.g. "A1:D10"), empty when every cell is null.
	DataRange string `json:"data_range,omitempty"`
}

// Summarize computes population statistics for a grid.
func Summarize(grid *models.CellGrid) Summary {
	s := Summary{Rows: grid.RowCount(), Cols: grid.ColCount()}
	if s.Rows == 0 || s.Cols == 0 {
		return s
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return s
	}

	s.NonEmptyCells = countNonEmptyCells(grid)
	s.Density = float64(s.NonEmptyCells) / float64(s.Rows*s.Cols)

	// Translate back to sheet coordinates.
	s.DataRange, _ = FormatRange(models.Range{
		StartRow: grid.Range.StartRow + minRow,
		StartCol: grid.Range.StartCol + minCol,
		EndRow:   grid.Range.StartRow + maxRow,
		EndCol:   grid.Range.StartCol + maxCol,
	})

	return s
}

// findDataBounds finds the bounding box of non-null cells.
func findDataBounds(grid *models.CellGrid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range grid.Cells {
		for colIdx, cell := range row {
			if cell.IsNull() {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-null cells in the grid.
func countNonEmptyCells(grid *models.CellGrid) int {
	count := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			if !cell.IsNull() {
				count++
			}
		}
	}
	return count
}
