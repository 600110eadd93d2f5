package driving

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// BatchObserver receives a state snapshot after every batch transition.
type BatchObserver func(state domain.BatchState)

// UploadService runs sequential upload batches. Files are uploaded in
// order; the first failure aborts the remainder of the batch. Only one
// batch may run at a time.
type UploadService interface {
	// Run uploads the files in order, invoking observer after every
	// state change when it is non-nil. The returned state is the
	// terminal snapshot; on failure the error names the failing file.
	Run(ctx context.Context, files []domain.PendingFile, observer BatchObserver) (*domain.BatchState, error)

	// State returns a snapshot of the most recent batch.
	State() domain.BatchState
}
