package mcp

import (
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Chat answers questions against the knowledge base.
	Chat driving.ChatService

	// Document exposes the indexed document list.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Chat == nil {
		return ErrMissingChatService
	}
	// Document is optional; the list_documents tool degrades gracefully.
	return nil
}
