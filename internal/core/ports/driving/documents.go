package driving

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// DocumentService exposes the read-only view of indexed documents.
// The remote service owns the authoritative list; the local cache is
// replaced wholesale on refresh and never edited in place except to
// drop a successfully deleted entry.
type DocumentService interface {
	// List returns the cached document list, fetching it on first use.
	List(ctx context.Context) ([]domain.Document, error)

	// Refresh replaces the cache with the remote list.
	Refresh(ctx context.Context) ([]domain.Document, error)

	// Remove deletes the document by server path and drops it from the
	// cache on success.
	Remove(ctx context.Context, path string) error
}
