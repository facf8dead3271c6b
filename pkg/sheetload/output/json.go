// Package output serializes uploads and insert results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// ToJSON serializes v, indenting with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// MappingToJSON serializes a mapping as {"headers", "rows", "records"}.
func MappingToJSON(m *models.Mapping, pretty bool) ([]byte, error) {
	return ToJSON(m, pretty)
}

// UploadToJSON serializes an upload.
func UploadToJSON(up *sheetload.Upload, pretty bool) ([]byte, error) {
	return ToJSON(up, pretty)
}

// ResultToJSON serializes an insert result.
func ResultToJSON(res *sheetload.Result, pretty bool) ([]byte, error) {
	return ToJSON(res, pretty)
}

// WriteOutcomes writes one line per outcome, numbered from 1.
func WriteOutcomes(w io.Writer, outcomes []string) error {
	for i, outcome := range outcomes {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i+1, outcome); err != nil {
			return err
		}
	}
	return nil
}
