package models

// CellGrid is a dense rectangular view of one sheet's used range.
// Row and column 0 correspond to the start of Range.
type CellGrid struct {
	// Sheet is the name of the decoded sheet.
	Sheet string `json:"sheet"`
	// Range is the declared used range the grid was built from.
	Range Range `json:"range"`
	// Cells holds RowCount rows of exactly ColCount values each.
	Cells [][]CellValue `json:"cells"`
}

// NewCellGrid allocates a grid of Null cells covering rng.
func NewCellGrid(sheet string, rng Range) *CellGrid {
	rows, cols := rng.Rows(), rng.Cols()
	cells := make([][]CellValue, rows)
	for i := range cells {
		cells[i] = make([]CellValue, cols)
	}
	return &CellGrid{Sheet: sheet, Range: rng, Cells: cells}
}

// RowCount returns the number of rows in the grid.
func (g *CellGrid) RowCount() int {
	if g == nil {
		return 0
	}
	return len(g.Cells)
}

// ColCount returns the number of columns in the grid.
func (g *CellGrid) ColCount() int {
	if g == nil || len(g.Cells) == 0 {
		return 0
	}
	return len(g.Cells[0])
}

// Cell returns the value at (row, col). Positions outside the grid are Null.
func (g *CellGrid) Cell(row, col int) CellValue {
	if row < 0 || row >= g.RowCount() {
		return Null()
	}
	cells := g.Cells[row]
	if col < 0 || col >= len(cells) {
		return Null()
	}
	return cells[col]
}

// Set stores v at (row, col). Positions outside the grid are ignored.
func (g *CellGrid) Set(row, col int, v CellValue) {
	if row < 0 || row >= g.RowCount() || col < 0 || col >= len(g.Cells[row]) {
		return
	}
	g.Cells[row][col] = v
}

// Row returns a copy of the cells in row.
func (g *CellGrid) Row(row int) []CellValue {
	out := make([]CellValue, g.ColCount())
	for col := range out {
		out[col] = g.Cell(row, col)
	}
	return out
}
