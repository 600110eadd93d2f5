package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// UploadService runs sequential upload batches against the gateway.
// Files are transferred strictly in order and the first failure aborts
// the remainder.
type UploadService struct {
	gateway driven.RAGGateway

	mu    sync.Mutex
	state domain.BatchState
}

var _ driving.UploadService = (*UploadService)(nil)

// NewUploadService creates an UploadService backed by the gateway.
func NewUploadService(gateway driven.RAGGateway) *UploadService {
	return &UploadService{gateway: gateway}
}

// Run uploads the files in order. Every file must have passed
// validation; a batch containing a rejected file is refused before any
// network traffic. Only one batch may run at a time.
func (s *UploadService) Run(ctx context.Context, files []domain.PendingFile, observer driving.BatchObserver) (*domain.BatchState, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files to upload", domain.ErrInvalidInput)
	}
	for _, f := range files {
		if !f.Validation.OK {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, f.Name, f.Validation.Reason)
		}
	}

	s.mu.Lock()
	if s.state.Phase == domain.BatchInProgress {
		s.mu.Unlock()
		return nil, domain.ErrBatchInProgress
	}
	s.state = domain.NewBatchState(uuid.NewString(), files)
	s.mu.Unlock()

	notify := func() {
		if observer != nil {
			observer(s.snapshot())
		}
	}

	for i, file := range files {
		s.transition(func(b *domain.BatchState) { b.Begin(i) })
		notify()

		progress := func(sent, total int64) {
			if total <= 0 {
				return
			}
			percent := int(sent * 100 / total)
			s.transition(func(b *domain.BatchState) { b.ApplyProgress(i, percent) })
			notify()
		}

		result, err := s.gateway.UploadDocument(ctx, file, progress)
		if err != nil {
			s.transition(func(b *domain.BatchState) { b.Abort(i, err) })
			notify()
			final := s.snapshot()
			return &final, fmt.Errorf("uploading %s: %w", file.Name, err)
		}

		s.transition(func(b *domain.BatchState) { b.Complete(i, result.Chunks) })
		notify()
		logger.Info("uploaded %s (%d chunks)", file.Name, result.Chunks)
	}

	s.transition(func(b *domain.BatchState) { b.Finish() })
	notify()

	final := s.snapshot()
	return &final, nil
}

// State returns a snapshot of the most recent batch.
func (s *UploadService) State() domain.BatchState {
	return s.snapshot()
}

func (s *UploadService) snapshot() domain.BatchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

func (s *UploadService) transition(fn func(*domain.BatchState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}
