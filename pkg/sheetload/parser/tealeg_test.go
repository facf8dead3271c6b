package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

func TestDecodeTealeg(t *testing.T) {
	data := buildWorkbook(t, "A1:B3", map[string]interface{}{
		"A1": "Name",
		"B1": "Score",
		"A2": "Alice",
		"B2": 42,
		"A3": "Bob",
	})

	grid, err := New(Tealeg()).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", grid.Sheet)
	assert.Equal(t, 3, grid.RowCount())
	assert.Equal(t, 2, grid.ColCount())
	assert.Equal(t, models.String("Name"), grid.Cell(0, 0))
	assert.Equal(t, models.String("Alice"), grid.Cell(1, 0))
	assert.Equal(t, models.Number(42), grid.Cell(1, 1))
	assert.True(t, grid.Cell(2, 1).IsNull())
}

func TestTealegMissingSheet(t *testing.T) {
	data := buildWorkbook(t, "A1", map[string]interface{}{"A1": "x"})

	wb, err := Tealeg().Open(data)
	require.NoError(t, err)
	defer wb.Close()

	_, _, err = wb.UsedRange("Nope")
	assert.Error(t, err)
	_, _, err = wb.Cell("Nope", "A1")
	assert.Error(t, err)
}
