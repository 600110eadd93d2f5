package services

import (
	"sync"

	"github.com/intramate/intramate-cli/internal/core/ports/driving"
)

// AttributionService tracks per-message source panel expansion. The
// state is a pure view concern and is never persisted.
type AttributionService struct {
	mu       sync.Mutex
	expanded map[int]bool
}

var _ driving.AttributionService = (*AttributionService)(nil)

// NewAttributionService creates an AttributionService with every panel
// collapsed.
func NewAttributionService() *AttributionService {
	return &AttributionService{expanded: make(map[int]bool)}
}

// Toggle flips the expansion state for the message at index and
// returns the new state.
func (s *AttributionService) Toggle(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded[index] {
		delete(s.expanded, index)
		return false
	}
	s.expanded[index] = true
	return true
}

// Expanded reports whether the panel at index is expanded.
func (s *AttributionService) Expanded(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded[index]
}

// Reset collapses every panel.
func (s *AttributionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded = make(map[int]bool)
}
