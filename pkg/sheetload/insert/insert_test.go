package insert

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

func TestParseOutcomes(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Success: 1; Success: 2 ;Error: bad", []string{"Success: 1", "Success: 2", "Error: bad"}},
		{"only", []string{"only"}},
		{"", []string{""}},
		{"a;", []string{"a", ""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseOutcomes(tt.input), "ParseOutcomes(%q)", tt.input)
	}
}

func TestFailureEscapesSeparator(t *testing.T) {
	assert.Equal(t, "Error: a, b", failure("a; b"))
	assert.Len(t, ParseOutcomes(joinOutcomes([]string{failure("x;y"), success("1")})), 2)
}

func TestMemoryInsertRecords(t *testing.T) {
	mem := NewMemory("Email")

	resp, err := mem.InsertRecords(context.Background(), []models.Record{
		{"Name": models.String("Alice"), "Email": models.String("a@x.com")},
		{"Name": models.String("Bob"), "Email": models.Null()},
		{"Name": models.String("Carol")},
	})
	require.NoError(t, err)

	outcomes := ParseOutcomes(resp)
	require.Len(t, outcomes, 3)
	assert.True(t, strings.HasPrefix(outcomes[0], "Success: "))
	assert.Equal(t, "Error: required field missing: Email", outcomes[1])
	assert.Equal(t, "Error: required field missing: Email", outcomes[2])

	batches := mem.Batches()
	require.Len(t, batches, 1)
	require.Len(t, batches[0].Order, 1)
	stored := batches[0].Records[batches[0].Order[0]]
	assert.Equal(t, models.String("Alice"), stored["Name"])
}

func TestMemoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMemory().InsertRecords(ctx, []models.Record{{}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, NewMemory().Batches())
}

func TestInserterFunc(t *testing.T) {
	var got []models.Record
	fn := InserterFunc(func(_ context.Context, records []models.Record) (string, error) {
		got = records
		return "ok", nil
	})

	resp, err := fn.InsertRecords(context.Background(), []models.Record{{"A": models.Number(1)}})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Len(t, got, 1)
}
