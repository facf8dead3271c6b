// Package parser decodes spreadsheet payloads into dense cell grids.
package parser

import (
	"fmt"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/models"
)

// Backend opens spreadsheet payloads with a concrete library.
type Backend interface {
	// Name identifies the backend (e.g. "excelize").
	Name() string
	// Open parses data into a workbook.
	Open(data []byte) (Workbook, error)
}

// Workbook is the read-only view of a parsed spreadsheet the decoder needs.
type Workbook interface {
	// SheetNames lists sheets in workbook order.
	SheetNames() []string
	// UsedRange returns the sheet's used range.
	// ok is false when the sheet has none.
	UsedRange(sheet string) (rng models.Range, ok bool, err error)
	// Cell looks up a cell by A1 reference. ok is false when the cell is absent.
	Cell(sheet, ref string) (v models.CellValue, ok bool, err error)
	// Close releases resources held by the workbook.
	Close() error
}

// Decoder turns spreadsheet bytes into the first sheet's cell grid.
type Decoder struct {
	backend  Backend
	maxCells int64
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxCells rejects used ranges covering more than n cells before the
// grid is allocated. n <= 0 disables the check.
func WithMaxCells(n int64) Option {
	return func(d *Decoder) {
		d.maxCells = n
	}
}

// New creates a Decoder on top of backend. A nil backend selects Excelize.
func New(backend Backend, opts ...Option) *Decoder {
	if backend == nil {
		backend = Excelize()
	}
	d := &Decoder{backend: backend}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Backend returns the backend used by the decoder.
func (d *Decoder) Backend() Backend {
	return d.backend
}

// Decode parses data and returns a dense grid of the first sheet's used range.
// All failures are reported as *errs.DecodeError.
func (d *Decoder) Decode(data []byte) (*models.CellGrid, error) {
	wb, err := d.backend.Open(data)
	if err != nil {
		return nil, errs.NewDecodeError("", fmt.Errorf("%w: %w", errs.ErrInvalidFormat, err))
	}
	defer wb.Close()

	sheets := wb.SheetNames()
	if len(sheets) == 0 {
		return nil, errs.NewDecodeError("", errs.ErrNoSheets)
	}
	sheet := sheets[0]

	rng, ok, err := wb.UsedRange(sheet)
	if err != nil {
		return nil, errs.NewDecodeError(sheet, err)
	}
	if !ok {
		return nil, errs.NewDecodeError(sheet, errs.ErrNoUsedRange)
	}
	if cells := int64(rng.Rows()) * int64(rng.Cols()); d.maxCells > 0 && cells > d.maxCells {
		return nil, errs.NewDecodeError(sheet,
			fmt.Errorf("%w: %d cells, limit %d", errs.ErrRangeTooLarge, cells, d.maxCells))
	}

	grid := models.NewCellGrid(sheet, rng)
	for row := rng.StartRow; row <= rng.EndRow; row++ {
		for col := rng.StartCol; col <= rng.EndCol; col++ {
			ref, err := CellRef(row, col)
			if err != nil {
				return nil, errs.NewDecodeError(sheet, err)
			}
			v, ok, err := wb.Cell(sheet, ref)
			if err != nil {
				return nil, errs.NewDecodeError(sheet, fmt.Errorf("cell %s: %w", ref, err))
			}
			if ok {
				grid.Set(row-rng.StartRow, col-rng.StartCol, v)
			}
		}
	}

	return grid, nil
}
