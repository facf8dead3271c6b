package sheetload

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/insert"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/mapper"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/parser"
)

// Upload is a selected file decoded and mapped into records.
type Upload struct {
	// ID identifies the upload in logs and responses.
	ID string `json:"id"`
	// FileName is the selected file's name.
	FileName string `json:"file_name"`
	// Sheet is the name of the consumed (first) sheet.
	Sheet string `json:"sheet"`
	// Summary describes the decoded grid.
	Summary parser.Summary `json:"summary"`
	// Mapping holds headers, raw rows and records.
	Mapping *models.Mapping `json:"mapping"`
}

// Result is an upload together with the insert outcomes.
type Result struct {
	Upload *Upload `json:"upload"`
	// Outcomes are the trimmed segments of the insert response, in order.
	Outcomes []string `json:"outcomes"`
	// Aligned reports whether there is exactly one outcome per record.
	// Outcomes are only positionally meaningful when this holds.
	Aligned bool `json:"aligned"`
}

// Loader runs the selection, decode and mapping steps for one upload.
type Loader struct {
	opts    Options
	decoder *parser.Decoder
	log     *slog.Logger
}

// NewLoader creates a Loader. A nil logger uses slog.Default().
func NewLoader(opts Options, logger *slog.Logger) (*Loader, error) {
	backend, err := opts.ParserBackend()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		opts:    opts,
		decoder: parser.New(backend, parser.WithMaxCells(opts.MaxCells)),
		log:     logger,
	}, nil
}

// Options returns the loader's options.
func (l *Loader) Options() Options {
	return l.opts
}

// Load selects exactly one source, reads it and maps its first sheet.
func (l *Loader) Load(ctx context.Context, sources ...Source) (*Upload, error) {
	src, err := l.opts.SelectFile(sources...)
	if err != nil {
		l.log.WarnContext(ctx, "file selection rejected", "error", err)
		return nil, err
	}

	data, err := readLimited(ctx, src, l.opts.MaxBytes)
	if err != nil {
		l.log.ErrorContext(ctx, "failed to read file", "file", src.Name(), "error", err)
		return nil, err
	}

	return l.Map(ctx, src.Name(), data)
}

// Map decodes data and maps the first sheet into records.
func (l *Loader) Map(ctx context.Context, fileName string, data []byte) (*Upload, error) {
	id := uuid.NewString()
	log := l.log.With("upload_id", id, "file", fileName)

	grid, err := l.decoder.Decode(data)
	if err != nil {
		log.ErrorContext(ctx, "failed to decode spreadsheet", "backend", l.decoder.Backend().Name(), "error", err)
		return nil, err
	}

	summary := parser.Summarize(grid)
	log.InfoContext(ctx, "spreadsheet decoded",
		"sheet", grid.Sheet,
		"rows", summary.Rows,
		"cols", summary.Cols,
		"non_empty_cells", summary.NonEmptyCells)

	mapping, err := mapper.MapRecords(grid)
	if err != nil {
		log.ErrorContext(ctx, "failed to map records", "error", err)
		return nil, err
	}

	log.InfoContext(ctx, "records mapped", "headers", len(mapping.Headers), "records", len(mapping.Records))

	return &Upload{
		ID:       id,
		FileName: fileName,
		Sheet:    grid.Sheet,
		Summary:  summary,
		Mapping:  mapping,
	}, nil
}

// Insert hands the upload's records to inserter and parses the outcomes.
// A rejected call is returned as *errs.InsertError. A nil upload or mapping
// yields ErrNothingSelected.
func (l *Loader) Insert(ctx context.Context, up *Upload, inserter insert.Inserter) (*Result, error) {
	if up == nil || up.Mapping == nil {
		return nil, ErrNothingSelected
	}
	records := up.Mapping.Records
	log := l.log.With("upload_id", up.ID, "file", up.FileName)

	resp, err := inserter.InsertRecords(ctx, records)
	if err != nil {
		log.ErrorContext(ctx, "failed to insert records", "records", len(records), "error", err)
		return nil, &errs.InsertError{Records: len(records), Err: err}
	}

	outcomes := insert.ParseOutcomes(resp)
	aligned := len(outcomes) == len(records)
	if !aligned {
		log.WarnContext(ctx, "insert outcomes do not match record count",
			"records", len(records), "outcomes", len(outcomes))
	}
	log.InfoContext(ctx, "records inserted", "records", len(records), "outcomes", len(outcomes))

	return &Result{
		Upload:   up,
		Outcomes: outcomes,
		Aligned:  aligned,
	}, nil
}
