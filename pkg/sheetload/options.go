// Package sheetload loads spreadsheet uploads into header-keyed records and
// hands them to a batch insert collaborator.
package sheetload

import (
	"fmt"
	"strings"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/parser"
)

// Backend names the spreadsheet library used to decode uploads.
type Backend string

const (
	// BackendExcelize decodes with github.com/xuri/excelize/v2.
	BackendExcelize Backend = "excelize"
	// BackendTealeg decodes with github.com/tealeg/xlsx.
	BackendTealeg Backend = "tealeg"
)

// DefaultMaxCells bounds the used range of a decoded sheet.
const DefaultMaxCells = 1_000_000

// DefaultExtensions lists the file name suffixes accepted by default.
var DefaultExtensions = []string{".xlsx"}

// Options configures upload loading.
type Options struct {
	// Backend selects the decoding library. Empty means excelize.
	Backend Backend
	// Extensions lists accepted file name suffixes, matched case-insensitively.
	// If empty, DefaultExtensions is used.
	Extensions []string
	// MaxBytes limits the payload size. Zero means no limit.
	MaxBytes int64
	// MaxCells limits the number of cells in the first sheet's used range.
	// Zero means no limit.
	MaxCells int64
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{
		Backend:    BackendExcelize,
		Extensions: DefaultExtensions,
		MaxCells:   DefaultMaxCells,
	}
}

// ParserBackend returns the parser backend for o.Backend.
func (o Options) ParserBackend() (parser.Backend, error) {
	switch o.Backend {
	case "", BackendExcelize:
		return parser.Excelize(), nil
	case BackendTealeg:
		return parser.Tealeg(), nil
	default:
		return nil, fmt.Errorf("invalid backend: %s (must be excelize or tealeg)", o.Backend)
	}
}

// AcceptedExtensions returns the configured extensions or the defaults.
func (o Options) AcceptedExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

// Accepts reports whether name ends with an accepted extension.
func (o Options) Accepts(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range o.AcceptedExtensions() {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
