// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/intramate/intramate-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewChat is the conversation view.
	ViewChat
	// ViewDocuments is the indexed-documents view.
	ViewDocuments
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewChat:
		return "chat"
	case ViewDocuments:
		return "documents"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// TranscriptLoaded carries the conversation history from the service.
type TranscriptLoaded struct {
	Messages []domain.Message
	Err      error
}

// AnswerReceived signals that a question round-trip finished. On folded
// remote failures the answer is the synthesized message and Err carries
// the underlying cause; on transport failures the answer is nil.
type AnswerReceived struct {
	Answer *domain.Message
	Err    error
}

// TranscriptCleared signals the conversation was discarded.
type TranscriptCleared struct {
	Err error
}

// FeedbackRecorded signals a verdict was stored on an answer.
type FeedbackRecorded struct {
	Index   int
	Verdict domain.Verdict
	Err     error
}

// DocumentsLoaded carries the indexed document list.
type DocumentsLoaded struct {
	Documents []domain.Document
	Err       error
}

// DocumentRemoved signals a document was deleted from the index.
type DocumentRemoved struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
