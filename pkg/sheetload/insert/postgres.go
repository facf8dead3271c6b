package insert

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// DefaultTable is the table records are written to when none is configured.
const DefaultTable = "sheet_records"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Postgres stores each record as a JSONB row. A failing record is rolled
// back to a savepoint so the rest of the batch still commits.
type Postgres struct {
	db    *sqlx.DB
	table string
	newID func() uuid.UUID
}

// Connect opens and pings a PostgreSQL database.
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// NewPostgres creates a Postgres inserter writing to table.
// An empty table selects DefaultTable.
func NewPostgres(db *sqlx.DB, table string) (*Postgres, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &Postgres{db: db, table: pq.QuoteIdentifier(table), newID: uuid.New}, nil
}

// EnsureSchema creates the records table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		batch_id UUID NOT NULL,
		row_index INTEGER NOT NULL,
		payload JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`, p.table)

	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", p.table, err)
	}
	return nil
}

// InsertRecords writes records in one transaction and returns one outcome
// per record in input order. The error is non-nil only when the batch as a
// whole could not be processed.
func (p *Postgres) InsertRecords(ctx context.Context, records []models.Record) (string, error) {
	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	query := fmt.Sprintf(
		`INSERT INTO %s (id, batch_id, row_index, payload) VALUES ($1, $2, $3, $4)`, p.table)

	batchID := p.newID()
	outcomes := make([]string, 0, len(records))
	for i, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			outcomes = append(outcomes, failure(err.Error()))
			continue
		}

		if _, err := tx.ExecContext(ctx, "SAVEPOINT record"); err != nil {
			return "", fmt.Errorf("failed to create savepoint: %w", err)
		}

		id := p.newID()
		// JSONB takes the text form; []byte would be sent as bytea.
		if _, err := tx.ExecContext(ctx, query, id, batchID, i, string(payload)); err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT record"); rbErr != nil {
				return "", fmt.Errorf("failed to roll back record %d: %w", i, rbErr)
			}
			outcomes = append(outcomes, failure(err.Error()))
			continue
		}

		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT record"); err != nil {
			return "", fmt.Errorf("failed to release savepoint: %w", err)
		}
		outcomes = append(outcomes, success(id.String()))
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit records: %w", err)
	}

	return joinOutcomes(outcomes), nil
}
