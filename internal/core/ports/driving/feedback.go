package driving

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// FeedbackService collects verdicts on assistant answers. A positive
// verdict is recorded immediately; a negative verdict opens a draft
// for reasons and an optional note, finalised by Submit. At most one
// draft is open at a time.
type FeedbackService interface {
	// RecordPositive marks the assistant message at index as helpful.
	RecordPositive(ctx context.Context, index int) error

	// Begin opens a negative-feedback draft for the message at index.
	Begin(ctx context.Context, index int) (*domain.FeedbackDraft, error)

	// ToggleReason flips a reason tag on the open draft and returns the
	// new state.
	ToggleReason(reason domain.FeedbackReason) (bool, error)

	// SetNote sets the free-text note on the open draft.
	SetNote(note string) error

	// Draft returns the open draft, or nil.
	Draft() *domain.FeedbackDraft

	// Submit finalises the draft: the report is delivered to the sink,
	// the negative verdict is recorded, and the draft is closed.
	Submit(ctx context.Context) error

	// Cancel discards the open draft without side effects.
	Cancel()
}
