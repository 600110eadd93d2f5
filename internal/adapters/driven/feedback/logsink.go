// Package feedback provides destinations for structured feedback
// reports.
package feedback

import (
	"context"
	"strings"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/logger"
)

// Ensure LogSink implements the interface.
var _ driven.FeedbackSink = (*LogSink)(nil)

// LogSink records feedback reports to the verbose log. It is the
// default sink while the remote service has no feedback endpoint.
type LogSink struct{}

// NewLogSink creates a new log-backed feedback sink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Record logs the report.
func (s *LogSink) Record(_ context.Context, report domain.FeedbackReport) error {
	reasons := make([]string, len(report.Reasons))
	for i, r := range report.Reasons {
		reasons[i] = string(r)
	}
	logger.Info("feedback on message %d: reasons=[%s] note=%q",
		report.MessageIndex, strings.Join(reasons, ", "), report.Note)
	return nil
}
