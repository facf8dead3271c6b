package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes cells into Sheet1, declares dim as the used range and
// returns the xlsx bytes.
func buildWorkbook(t *testing.T, dim string, cells map[string]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	for ref, v := range cells {
		require.NoError(t, f.SetCellValue(sheetName, ref, v))
	}
	require.NoError(t, f.SetSheetDimension(sheetName, dim))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecodeExcelize(t *testing.T) {
	data := buildWorkbook(t, "A1:B3", map[string]interface{}{
		"A1": "Name",
		"B1": "Email ",
		"A2": "Alice",
		"B2": "a@x.com",
		"A3": "Bob",
	})

	grid, err := New(Excelize()).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", grid.Sheet)
	assert.Equal(t, 3, grid.RowCount())
	assert.Equal(t, 2, grid.ColCount())
	assert.Equal(t, models.String("Name"), grid.Cell(0, 0))
	assert.Equal(t, models.String("Email "), grid.Cell(0, 1))
	assert.Equal(t, models.String("a@x.com"), grid.Cell(1, 1))
	assert.Equal(t, models.String("Bob"), grid.Cell(2, 0))
	assert.True(t, grid.Cell(2, 1).IsNull(), "missing cell should be null")
}

func TestDecodeExcelizeScalarKinds(t *testing.T) {
	when := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	data := buildWorkbook(t, "A1:D2", map[string]interface{}{
		"A1": "Count",
		"B1": "Ratio",
		"C1": "Active",
		"D1": "Joined",
		"A2": 100,
		"B2": 200.5,
		"C2": true,
		"D2": when,
	})

	grid, err := New(nil).Decode(data)
	require.NoError(t, err)

	n, ok := grid.Cell(1, 0).Float()
	require.True(t, ok, "expected number, got %s", grid.Cell(1, 0).Kind())
	assert.Equal(t, 100.0, n)

	n, ok = grid.Cell(1, 1).Float()
	require.True(t, ok)
	assert.Equal(t, 200.5, n)

	b, ok := grid.Cell(1, 2).Boolean()
	require.True(t, ok, "expected bool, got %s", grid.Cell(1, 2).Kind())
	assert.True(t, b)

	d, ok := grid.Cell(1, 3).Time()
	require.True(t, ok, "expected date, got %s", grid.Cell(1, 3).Kind())
	assert.WithinDuration(t, when, d, time.Second)
}

func TestDecodeExcelizeOffsetRange(t *testing.T) {
	data := buildWorkbook(t, "B2:C3", map[string]interface{}{
		"A1": "outside",
		"B2": "H1",
		"C2": "H2",
		"B3": 1,
		"C3": 2,
	})

	grid, err := New(Excelize()).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, models.Range{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}, grid.Range)
	assert.Equal(t, 2, grid.RowCount())
	assert.Equal(t, 2, grid.ColCount())
	assert.Equal(t, models.String("H1"), grid.Cell(0, 0))
	assert.Equal(t, models.Number(2), grid.Cell(1, 1))
}

func TestDecodeInvalidPayload(t *testing.T) {
	for _, backend := range []Backend{Excelize(), Tealeg()} {
		t.Run(backend.Name(), func(t *testing.T) {
			_, err := New(backend).Decode([]byte("Name,Email\nAlice,a@x.com\n"))
			require.Error(t, err)

			var decErr *errs.DecodeError
			assert.True(t, errors.As(err, &decErr), "expected DecodeError, got %T", err)
			assert.ErrorIs(t, err, errs.ErrInvalidFormat)
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellValue
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"1E3", models.Number(1000)},
		{"hello", models.String("hello")},
		{"", models.String("")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("parseValue(%q) = %v (%s), expected %v (%s)",
				tt.input, result, result.Kind(), tt.expected, tt.expected.Kind())
		}
	}
}

func TestParseISODate(t *testing.T) {
	got, ok := parseISODate("2024-03-15T10:30:00Z")
	require.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)))

	got, ok = parseISODate("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, 15, got.Day())

	_, ok = parseISODate("15/03/2024")
	assert.False(t, ok)
}

func TestDecodeExcelizeWithoutDimension(t *testing.T) {
	data := buildWorkbook(t, "", map[string]interface{}{
		"B2": "Name",
		"C2": "Email",
		"B3": "Alice",
	})

	grid, err := New(Excelize()).Decode(data)
	require.NoError(t, err)

	assert.Equal(t, models.Range{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}, grid.Range)
	assert.Equal(t, models.String("Name"), grid.Cell(0, 0))
	assert.Equal(t, models.String("Email"), grid.Cell(0, 1))
	assert.Equal(t, models.String("Alice"), grid.Cell(1, 0))
	assert.True(t, grid.Cell(1, 1).IsNull())
}

func TestDecodeExcelizeWithoutDimensionEmptySheet(t *testing.T) {
	_, err := New(Excelize()).Decode(buildWorkbook(t, "", nil))
	assert.ErrorIs(t, err, errs.ErrNoUsedRange)
}

func TestDecodeEmptyStringIsNull(t *testing.T) {
	data := buildWorkbook(t, "A1:B2", map[string]interface{}{
		"A1": "Name",
		"B1": "",
		"A2": "Alice",
		"B2": "",
	})

	for _, backend := range []Backend{Excelize(), Tealeg()} {
		t.Run(backend.Name(), func(t *testing.T) {
			grid, err := New(backend).Decode(data)
			require.NoError(t, err)

			assert.Equal(t, models.String("Name"), grid.Cell(0, 0))
			assert.Equal(t, models.KindNull, grid.Cell(0, 1).Kind())
			assert.Equal(t, models.String("Alice"), grid.Cell(1, 0))
			assert.Equal(t, models.KindNull, grid.Cell(1, 1).Kind())
		})
	}
}

func TestDecodeExcelizeOversizedDimension(t *testing.T) {
	data := buildWorkbook(t, "A1:Z200000", map[string]interface{}{"A1": "Name"})

	grid, err := New(Excelize(), WithMaxCells(1_000_000)).Decode(data)
	assert.Nil(t, grid)

	var decErr *errs.DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.ErrorIs(t, err, errs.ErrRangeTooLarge)
}
