// Package errs defines the error classes produced while loading a spreadsheet.
package errs

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Selection failures.
var (
	// ErrNoFile indicates that no file was selected.
	ErrNoFile = errors.New("no file received")
	// ErrMultipleFiles indicates that more than one file was selected.
	ErrMultipleFiles = errors.New("multiple files received")
	// ErrUnsupportedExtension indicates the file name has no recognized spreadsheet extension.
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

// Decode failures.
var (
	// ErrInvalidFormat indicates the payload is not a parsable spreadsheet container.
	ErrInvalidFormat = errors.New("invalid spreadsheet format")
	// ErrNoSheets indicates the workbook contains no sheets.
	ErrNoSheets = errors.New("workbook contains no sheets")
	// ErrNoUsedRange indicates the first sheet declares no used range.
	ErrNoUsedRange = errors.New("sheet has no used range")
	// ErrRangeTooLarge indicates the used range covers more cells than allowed.
	ErrRangeTooLarge = errors.New("sheet range too large")
)

// ErrFileTooLarge indicates the payload exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// ErrNoHeaderRow indicates the decoded grid has no rows.
var ErrNoHeaderRow = errors.New("no header row")

// SelectionError is returned when the file selection cannot be processed.
type SelectionError struct {
	Name string
	Err  error
}

func (e *SelectionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("selection error: %v", e.Err)
	}
	return fmt.Sprintf("selection error for %q: %v", e.Name, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// ReadError is returned when the byte source fails.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read error for %q: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when the payload cannot be turned into a cell grid.
type DecodeError struct {
	Sheet string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("decode error: %v", e.Err)
	}
	return fmt.Sprintf("decode error in sheet %q: %v", e.Sheet, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MappingError is returned when a grid cannot be mapped into records.
type MappingError struct {
	Err error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping error: %v", e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// InsertError is returned when the insert collaborator rejects the batch.
type InsertError struct {
	Records int
	Err     error
}

func (e *InsertError) Error() string {
	return fmt.Sprintf("insert error (%d records): %v", e.Records, e.Err)
}

func (e *InsertError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(sheet string, err error) *DecodeError {
	return &DecodeError{Sheet: sheet, Err: err}
}

// UserMessage returns the message shown to the person who selected the file.
// Wrapped causes are not included for read failures; callers log them.
func UserMessage(err error) string {
	var (
		selErr *SelectionError
		rdErr  *ReadError
		decErr *DecodeError
		mapErr *MappingError
		insErr *InsertError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoFile):
		return "Error accessing file -- No file received"
	case errors.Is(err, ErrMultipleFiles):
		return "Error accessing file -- Multiple files received"
	case errors.As(err, &selErr):
		return "Please select an Excel file."
	case errors.Is(err, ErrFileTooLarge):
		return "Error accessing file -- File is too large"
	case errors.As(err, &rdErr):
		if rdErr.Name == "" {
			return "Error accessing file -- Could not read file"
		}
		return "Error accessing file -- Could not read " + filepath.Base(rdErr.Name)
	case errors.Is(err, ErrNoSheets):
		return "Excel file does not contain any sheets"
	case errors.Is(err, ErrNoUsedRange):
		return "Excel sheet is empty"
	case errors.Is(err, ErrRangeTooLarge):
		return "Excel sheet is too large"
	case errors.As(err, &decErr):
		return "Cannot read Excel file (incorrect file format?)"
	case errors.As(err, &mapErr):
		return "Excel sheet has no header row"
	case errors.As(err, &insErr):
		return "Error inserting records: " + insErr.Err.Error()
	default:
		return err.Error()
	}
}
