package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ukaji3/sheetload-go/pkg/sheetload"
	"github.com/ukaji3/sheetload-go/pkg/sheetload/errs"
)

// FileField is the multipart form field carrying the selected file.
const FileField = "file"

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePreview decodes and maps the upload without inserting it.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	up, ok := s.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, up)
}

// handleUpload maps the upload and inserts its records.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	up, ok := s.load(w, r)
	if !ok {
		return
	}

	res, err := s.loader.Insert(r.Context(), up, s.inserter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) load(w http.ResponseWriter, r *http.Request) (*sheetload.Upload, bool) {
	if maxBytes := s.loader.Options().MaxBytes; maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)
	}

	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, &errs.ReadError{Name: FileField, Err: errs.ErrFileTooLarge})
			return nil, false
		}
		if errors.Is(err, http.ErrNotMultipart) {
			s.writeError(w, r, &errs.SelectionError{Err: errs.ErrNoFile})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart form"})
		return nil, false
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck // temp files only

	files := r.MultipartForm.File[FileField]
	sources := make([]sheetload.Source, 0, len(files))
	for _, fh := range files {
		sources = append(sources, fileHeaderSource{fh})
	}

	up, err := s.loader.Load(r.Context(), sources...)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return up, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.ErrorContext(r.Context(), "upload failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errs.UserMessage(err)})
}

// statusFor maps an upload error class to an HTTP status code.
func statusFor(err error) int {
	var (
		selErr *errs.SelectionError
		rdErr  *errs.ReadError
		decErr *errs.DecodeError
		mapErr *errs.MappingError
		insErr *errs.InsertError
	)
	switch {
	case errors.Is(err, errs.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &selErr):
		return http.StatusBadRequest
	case errors.As(err, &rdErr):
		return http.StatusBadRequest
	case errors.As(err, &decErr), errors.As(err, &mapErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &insErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fileHeaderSource defers opening a multipart file until it is selected.
type fileHeaderSource struct {
	fh *multipart.FileHeader
}

func (s fileHeaderSource) Name() string { return s.fh.Filename }

func (s fileHeaderSource) ReadBytes(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := s.fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
