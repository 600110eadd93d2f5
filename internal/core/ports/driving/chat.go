package driving

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// ChatService manages the conversation transcript and question flow.
// Only one question may be in flight at a time; a concurrent Ask
// returns domain.ErrAskInFlight.
type ChatService interface {
	// Ask appends the question to the transcript, sends it, and appends
	// the answer. Remote auth and server failures are folded into a
	// synthesized assistant message (returned along with the error);
	// transport failures leave the question pending and return only the
	// error.
	Ask(ctx context.Context, question, language string) (*domain.Message, error)

	// History returns the transcript in conversation order.
	History(ctx context.Context) ([]domain.Message, error)

	// Clear discards the transcript, in memory and in the store.
	Clear(ctx context.Context) error

	// AnnotateFeedback sets the verdict on the assistant message at
	// index, overwriting any previous verdict.
	AnnotateFeedback(ctx context.Context, index int, verdict domain.Verdict) error

	// Summarize condenses arbitrary text into the given language.
	Summarize(ctx context.Context, text, language string) (string, error)
}
