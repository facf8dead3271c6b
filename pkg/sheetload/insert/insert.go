// Package insert provides batch insert collaborators for mapped records.
//
// An Inserter persists a batch and answers with a single outcome string: one
// segment per record, separated by OutcomeSeparator. Segments produced by the
// inserters in this package have the form "Success: <id>" or "Error: <reason>".
package insert

import (
	"context"
	"strings"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// OutcomeSeparator delimits per-record outcomes in an insert response.
const OutcomeSeparator = ";"

// Inserter persists a batch of records.
type Inserter interface {
	InsertRecords(ctx context.Context, records []models.Record) (string, error)
}

// InserterFunc adapts a function to the Inserter interface.
type InserterFunc func(ctx context.Context, records []models.Record) (string, error)

// InsertRecords calls fn.
func (fn InserterFunc) InsertRecords(ctx context.Context, records []models.Record) (string, error) {
	return fn(ctx, records)
}

// ParseOutcomes splits an insert response on OutcomeSeparator and trims each
// segment. Like a plain split, an empty response yields a single "" segment.
func ParseOutcomes(response string) []string {
	parts := strings.Split(response, OutcomeSeparator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

func success(id string) string {
	return "Success: " + id
}

func failure(reason string) string {
	// Keep the reason from splitting into extra segments.
	return "Error: " + strings.ReplaceAll(reason, OutcomeSeparator, ",")
}

func joinOutcomes(outcomes []string) string {
	return strings.Join(outcomes, OutcomeSeparator)
}
