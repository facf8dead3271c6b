package models

// Range represents inclusive cell coordinate bounds of a sheet's used range.
type Range struct {
	// StartRow is the first row (0-based).
	StartRow int `json:"start_row"`
	// StartCol is the first column (0-based).
	StartCol int `json:"start_col"`
	// EndRow is the last row (0-based, inclusive).
	EndRow int `json:"end_row"`
	// EndCol is the last column (0-based, inclusive).
	EndCol int `json:"end_col"`
}

// Rows returns the number of rows covered by the range.
func (r Range) Rows() int {
	if r.EndRow < r.StartRow {
		return 0
	}
	return r.EndRow - r.StartRow + 1
}

// Cols returns the number of columns covered by the range.
func (r Range) Cols() int {
	if r.EndCol < r.StartCol {
		return 0
	}
	return r.EndCol - r.StartCol + 1
}
