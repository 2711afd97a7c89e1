package classify

import (
	"context"
	"sync"
	"time"

	"github.com/b1443/ClosetManager/pkg/pixels"
)

// Session serializes classification for one caller. At most one run is in
// flight: starting a new run cancels the previous one (cancel-and-restart),
// and every run carries the session's wall-clock budget.
type Session struct {
	classifier *Classifier
	timeout    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewSession wraps a classifier with the default 15 second budget.
func NewSession(classifier *Classifier) *Session {
	return NewSessionWithTimeout(classifier, DefaultTimeout)
}

// NewSessionWithTimeout wraps a classifier with a custom budget.
func NewSessionWithTimeout(classifier *Classifier, timeout time.Duration) *Session {
	return &Session{classifier: classifier, timeout: timeout}
}

// Classify cancels any in-flight run, then classifies buf under the session
// budget.
func (s *Session) Classify(ctx context.Context, buf *pixels.Buffer) (Result, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		// Only clear the slot if a newer run has not replaced it.
		if s.gen == myGen {
			s.cancel = nil
		}
		s.mu.Unlock()
	}()

	return s.classifier.Classify(runCtx, buf)
}

// Cancel stops any in-flight run.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
