package driven

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// FeedbackSink receives finalised negative-feedback reports. The
// remote service exposes no feedback endpoint, so this port is the
// extension point for wherever reports should land (a local log by
// default, a future collection endpoint later).
type FeedbackSink interface {
	// Record delivers one finalised report.
	Record(ctx context.Context, report domain.FeedbackReport) error
}
