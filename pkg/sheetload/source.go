package sheetload

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
)

// Source is a selected file whose bytes can be read on demand.
type Source interface {
	// Name is the file name used for the extension check.
	Name() string
	// ReadBytes returns the full payload.
	ReadBytes(ctx context.Context) ([]byte, error)
}

// FileSource reads a file from the local filesystem.
type FileSource string

func (p FileSource) Name() string { return filepath.Base(string(p)) }

func (p FileSource) ReadBytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(string(p))
}

// ReaderSource reads a payload from an io.Reader, e.g. a multipart upload.
type ReaderSource struct {
	FileName string
	Reader   io.Reader
}

func (s ReaderSource) Name() string { return s.FileName }

func (s ReaderSource) ReadBytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.ReadAll(s.Reader)
}

// BytesSource is an in-memory payload.
func BytesSource(name string, data []byte) Source {
	return ReaderSource{FileName: name, Reader: bytes.NewReader(data)}
}

// SelectFile checks a file selection: exactly one source whose name carries
// an accepted extension. Failures are *errs.SelectionError and happen before
// any bytes are read.
func (o Options) SelectFile(sources ...Source) (Source, error) {
	switch len(sources) {
	case 0:
		return nil, &errs.SelectionError{Err: errs.ErrNoFile}
	case 1:
	default:
		return nil, &errs.SelectionError{Err: errs.ErrMultipleFiles}
	}

	src := sources[0]
	if src == nil {
		return nil, &errs.SelectionError{Err: errs.ErrNoFile}
	}
	if !o.Accepts(src.Name()) {
		return nil, &errs.SelectionError{Name: src.Name(), Err: errs.ErrUnsupportedExtension}
	}
	return src, nil
}

// readLimited reads src and enforces maxBytes when positive.
func readLimited(ctx context.Context, src Source, maxBytes int64) ([]byte, error) {
	data, err := src.ReadBytes(ctx)
	if err != nil {
		return nil, &errs.ReadError{Name: src.Name(), Err: err}
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, &errs.ReadError{Name: src.Name(), Err: errs.ErrFileTooLarge}
	}
	return data, nil
}
