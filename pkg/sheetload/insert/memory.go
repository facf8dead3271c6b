package insert

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// Batch is one InsertRecords call held by Memory.
type Batch struct {
	ID      string
	Records map[string]models.Record
	Order   []string
}

// Memory keeps inserted records in process. Records missing any of the
// required keys (absent or null) are rejected individually.
type Memory struct {
	mu       sync.RWMutex
	required []string
	batches  []Batch
}

// NewMemory creates an in-memory inserter.
func NewMemory(required ...string) *Memory {
	return &Memory{required: required}
}

func (m *Memory) InsertRecords(ctx context.Context, records []models.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	batch := Batch{
		ID:      uuid.NewString(),
		Records: make(map[string]models.Record, len(records)),
	}
	outcomes := make([]string, 0, len(records))
	for _, record := range records {
		if missing := m.missing(record); missing != "" {
			outcomes = append(outcomes, failure(fmt.Sprintf("required field missing: %s", missing)))
			continue
		}
		id := uuid.NewString()
		batch.Records[id] = record
		batch.Order = append(batch.Order, id)
		outcomes = append(outcomes, success(id))
	}

	m.mu.Lock()
	m.batches = append(m.batches, batch)
	m.mu.Unlock()

	return joinOutcomes(outcomes), nil
}

// Batches returns the batches inserted so far, oldest first.
func (m *Memory) Batches() []Batch {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Batch, len(m.batches))
	copy(out, m.batches)
	return out
}

func (m *Memory) missing(record models.Record) string {
	for _, key := range m.required {
		if v, ok := record[key]; !ok || v.IsNull() {
			return key
		}
	}
	return ""
}
