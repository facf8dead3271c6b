package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Range
	}{
		{"A1:B3", models.Range{EndRow: 2, EndCol: 1}},
		{"$A$1:$D$10", models.Range{EndRow: 9, EndCol: 3}},
		{"B2:C3", models.Range{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 2}},
		{"A1", models.Range{}},
		{"C3:A1", models.Range{EndRow: 2, EndCol: 2}},
		{"'Sheet 1'!A1:AA2", models.Range{EndRow: 1, EndCol: 26}},
	}

	for _, tt := range tests {
		result, err := ParseRange(tt.input)
		if err != nil {
			t.Errorf("ParseRange(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestParseRangeInvalid(t *testing.T) {
	for _, input := range []string{"", "A1:B2:C3", "1A:B2", "A1:"} {
		_, err := ParseRange(input)
		assert.Error(t, err, "ParseRange(%q)", input)
	}
}

func TestCellRef(t *testing.T) {
	tests := []struct {
		row, col int
		expected string
	}{
		{0, 0, "A1"},
		{2, 1, "B3"},
		{0, 25, "Z1"},
		{9, 26, "AA10"},
	}

	for _, tt := range tests {
		ref, err := CellRef(tt.row, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, ref)

		row, col, err := ParseCellRef(ref)
		require.NoError(t, err)
		assert.Equal(t, tt.row, row)
		assert.Equal(t, tt.col, col)
	}
}

func TestFormatRange(t *testing.T) {
	ref, err := FormatRange(models.Range{StartRow: 1, StartCol: 1, EndRow: 9, EndCol: 3})
	require.NoError(t, err)
	assert.Equal(t, "B2:D10", ref)
}

func TestDataBounds(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]string
		want   models.Range
		wantOK bool
	}{
		{"nil", nil, models.Range{}, false},
		{"all empty", [][]string{{}, {"", ""}}, models.Range{}, false},
		{"single cell", [][]string{{"x"}}, models.Range{}, true},
		{
			name:   "offset block",
			rows:   [][]string{{}, {"", "a", "b"}, {"", "", "", "c"}},
			want:   models.Range{StartRow: 1, StartCol: 1, EndRow: 2, EndCol: 3},
			wantOK: true,
		},
		{
			name:   "leftmost column on later row",
			rows:   [][]string{{"", "", "a"}, {"b"}},
			want:   models.Range{StartRow: 0, StartCol: 0, EndRow: 1, EndCol: 2},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := dataBounds(tt.rows)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
