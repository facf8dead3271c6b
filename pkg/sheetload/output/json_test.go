package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

func TestMappingToJSON(t *testing.T) {
	m := &models.Mapping{
		Headers: models.HeaderRow{"Name", "Score", "Active", "Joined", "Email"},
		Rows: []models.RawRow{{
			models.String("Alice"),
			models.Number(4.5),
			models.Bool(true),
			models.Date(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
			models.Null(),
		}},
		Records: []models.Record{{
			"Name":  models.String("Alice"),
			"Email": models.Null(),
		}},
	}

	data, err := MappingToJSON(m, false)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"headers": ["Name", "Score", "Active", "Joined", "Email"],
		"rows": [["Alice", 4.5, true, "2024-03-15T00:00:00Z", null]],
		"records": [{"Email": null, "Name": "Alice"}]
	}`, string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(map[string]int{"a": 1}, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}

func TestResultToJSON(t *testing.T) {
	res := &sheetload.Result{
		Upload:   &sheetload.Upload{ID: "u1", FileName: "leads.xlsx", Mapping: &models.Mapping{}},
		Outcomes: []string{"Success: 1"},
		Aligned:  true,
	}

	data, err := ResultToJSON(res, false)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"outcomes":["Success: 1"]`))
	assert.True(t, strings.Contains(string(data), `"aligned":true`))
}

func TestWriteOutcomes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutcomes(&buf, []string{"Success: 1", "Error: bad"}))
	assert.Equal(t, "1\tSuccess: 1\n2\tError: bad\n", buf.String())
}
