// Package memory provides in-memory store implementations, used as
// fixtures in tests and as fallbacks when persistence is disabled.
package memory

import (
	"context"
	"sync"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
)

// Ensure TranscriptStore implements the interface.
var _ driven.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore is an in-memory implementation of driven.TranscriptStore.
type TranscriptStore struct {
	mu       sync.RWMutex
	messages []domain.Message
}

// NewTranscriptStore creates a new in-memory transcript store.
func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{}
}

// Save replaces the stored transcript.
func (s *TranscriptStore) Save(_ context.Context, messages []domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = make([]domain.Message, len(messages))
	copy(s.messages, messages)
	return nil
}

// Load returns the stored transcript.
func (s *TranscriptStore) Load(_ context.Context) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// Clear discards the stored transcript.
func (s *TranscriptStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	return nil
}
