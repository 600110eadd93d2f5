package driven

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// TranscriptStore persists the chat transcript. The transcript is
// saved and loaded as a whole value; Save replaces any previous
// transcript atomically so a reload never observes a partial write.
type TranscriptStore interface {
	// Save replaces the stored transcript.
	Save(ctx context.Context, messages []domain.Message) error

	// Load returns the stored transcript, or an empty slice when none
	// has been saved.
	Load(ctx context.Context) ([]domain.Message, error)

	// Clear removes the stored transcript.
	Clear(ctx context.Context) error
}
