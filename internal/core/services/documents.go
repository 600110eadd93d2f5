package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// DocumentService caches the remote document list. The remote service
// owns the authoritative list; the cache is replaced wholesale on
// refresh and is only edited in place to drop a deleted entry.
type DocumentService struct {
	gateway driven.RAGGateway

	mu      sync.Mutex
	cache   []domain.Document
	fetched bool
}

var _ driving.DocumentService = (*DocumentService)(nil)

// NewDocumentService creates a DocumentService backed by the gateway.
func NewDocumentService(gateway driven.RAGGateway) *DocumentService {
	return &DocumentService{gateway: gateway}
}

// List returns the cached list, fetching it from the remote service on
// first use.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	s.mu.Lock()
	fetched := s.fetched
	s.mu.Unlock()

	if !fetched {
		return s.Refresh(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Document, len(s.cache))
	copy(out, s.cache)
	return out, nil
}

// Refresh replaces the cache with the remote list.
func (s *DocumentService) Refresh(ctx context.Context) ([]domain.Document, error) {
	documents, err := s.gateway.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing documents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = documents
	s.fetched = true
	logger.Debug("document cache refreshed (%d documents)", len(documents))

	out := make([]domain.Document, len(s.cache))
	copy(out, s.cache)
	return out, nil
}

// Remove deletes the document by server path. The cache entry is
// dropped only after the remote delete succeeds.
func (s *DocumentService) Remove(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: document path must not be empty", domain.ErrInvalidInput)
	}

	if err := s.gateway.DeleteDocument(ctx, path); err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cache[:0]
	for _, doc := range s.cache {
		if doc.Path != path {
			kept = append(kept, doc)
		}
	}
	s.cache = kept
	return nil
}
