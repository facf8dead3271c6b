package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
	"github.com/xuri/excelize/v2"
)

// CellRef returns the canonical A1-style reference for a 0-based position.
func CellRef(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

// ParseCellRef parses an A1-style reference (with or without $ anchors)
// into a 0-based row and column.
func ParseCellRef(ref string) (row, col int, err error) {
	c, r, err := excelize.CellNameToCoordinates(strings.ReplaceAll(ref, "$", ""))
	if err != nil {
		return 0, 0, err
	}
	return r - 1, c - 1, nil
}

// ParseRange parses a range reference such as A1:D10, $A$1:$D$10 or a
// single cell A1 into a Range. Reversed corners are normalized.
func ParseRange(ref string) (models.Range, error) {
	ref = strings.TrimSpace(ref)
	// Drop a sheet qualifier such as 'Sheet 1'!A1:B2
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 || parts[0] == "" {
		return models.Range{}, fmt.Errorf("invalid range reference %q", ref)
	}

	startRow, startCol, err := ParseCellRef(parts[0])
	if err != nil {
		return models.Range{}, fmt.Errorf("invalid range reference %q: %w", ref, err)
	}

	endRow, endCol := startRow, startCol
	if len(parts) == 2 {
		endRow, endCol, err = ParseCellRef(parts[1])
		if err != nil {
			return models.Range{}, fmt.Errorf("invalid range reference %q: %w", ref, err)
		}
	}

	return models.Range{
		StartRow: min(startRow, endRow),
		StartCol: min(startCol, endCol),
		EndRow:   max(startRow, endRow),
		EndCol:   max(startCol, endCol),
	}, nil
}

// FormatRange returns the A1:D10 form of rng.
func FormatRange(rng models.Range) (string, error) {
	start, err := CellRef(rng.StartRow, rng.StartCol)
	if err != nil {
		return "", err
	}
	end, err := CellRef(rng.EndRow, rng.EndCol)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// dataBounds returns the bounding range of non-empty values in rows, as
// returned by GetRows. ok is false when every value is empty.
func dataBounds(rows [][]string) (rng models.Range, ok bool) {
	rng = models.Range{StartRow: -1, StartCol: -1, EndRow: -1, EndCol: -1}

	for rowIdx, row := range rows {
		for colIdx, v := range row {
			if v == "" {
				continue
			}
			if rng.StartRow < 0 {
				rng.StartRow = rowIdx
			}
			rng.EndRow = rowIdx
			if rng.StartCol < 0 || colIdx < rng.StartCol {
				rng.StartCol = colIdx
			}
			if colIdx > rng.EndCol {
				rng.EndCol = colIdx
			}
		}
	}

	if rng.StartRow < 0 {
		return models.Range{}, false
	}
	return rng, true
}
