// Package tui provides an interactive terminal user interface for IntraMate.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat manages the conversation transcript.
	Chat driving.ChatService

	// Document exposes the indexed document list.
	Document driving.DocumentService

	// Feedback collects verdicts on answers.
	Feedback driving.FeedbackService

	// Attribution tracks which source panels are expanded.
	Attribution driving.AttributionService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	chat driving.ChatService,
	document driving.DocumentService,
	feedback driving.FeedbackService,
	attribution driving.AttributionService,
) *Ports {
	return &Ports{
		Chat:        chat,
		Document:    document,
		Feedback:    feedback,
		Attribution: attribution,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	if p.Document == nil {
		return ErrMissingDocumentService
	}
	return nil
}
