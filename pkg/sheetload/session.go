package sheetload

import (
	"context"
	"errors"
	"sync"

	"github.com/ukaji3/sheetload-go/pkg/sheetload/insert"
)

var (
	// ErrSuperseded is returned by Session.Select when a newer selection
	// started before this one finished.
	ErrSuperseded = errors.New("selection superseded by a newer one")
	// ErrNothingSelected is returned by Session.Insert before any upload
	// has been loaded successfully.
	ErrNothingSelected = errors.New("no upload loaded")
)

// Session serializes file-selection events: every Select supersedes the one
// in flight and only the latest selection's upload becomes current.
type Session struct {
	loader *Loader

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Upload
}

// NewSession creates a Session on top of loader.
func NewSession(loader *Loader) *Session {
	return &Session{loader: loader}
}

// Select loads sources as the new current upload. A failed selection clears
// the current upload.
func (s *Session) Select(ctx context.Context, sources ...Source) (*Upload, error) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()
	defer cancel()

	up, err := s.loader.Load(ctx, sources...)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return nil, ErrSuperseded
	}
	s.cancel = nil
	if err != nil {
		s.current = nil
		return nil, err
	}
	s.current = up
	return up, nil
}

// Current returns the latest successfully loaded upload, or nil.
func (s *Session) Current() *Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Insert sends the current upload's records to inserter.
func (s *Session) Insert(ctx context.Context, inserter insert.Inserter) (*Result, error) {
	up := s.Current()
	if up == nil {
		return nil, ErrNothingSelected
	}
	return s.loader.Insert(ctx, up, inserter)
}
