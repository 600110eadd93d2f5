package driven

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// ProgressFunc receives transfer progress during an upload.
// sent and total are byte counts; total may be zero when unknown.
type ProgressFunc func(sent, total int64)

// UploadResult is the server's acknowledgement of an ingested file.
type UploadResult struct {
	// Chunks is the number of chunks the file was split into.
	Chunks int

	// Message is the server's status text.
	Message string
}

// ChatResult is the server's answer to a question.
type ChatResult struct {
	// Answer is the generated answer text.
	Answer string

	// Sources attributes the answer. Nil when the server sent none.
	Sources *domain.Sources
}

// RAGGateway is the remote document and chat service. Implementations
// translate every failure into the domain error taxonomy: a
// *domain.RemoteError for anything that reached the network, and
// domain.ErrNoCredentials before any traffic when no key pair is
// stored. The gateway performs no retries; cancellation is the
// caller's context.
type RAGGateway interface {
	// UploadDocument sends one file for ingestion, reporting transfer
	// progress through progress when it is non-nil.
	UploadDocument(ctx context.Context, file domain.PendingFile, progress ProgressFunc) (*UploadResult, error)

	// ListDocuments returns the authoritative indexed document list.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// DeleteDocument removes the document identified by its server path.
	DeleteDocument(ctx context.Context, path string) error

	// Chat asks a question and returns the attributed answer.
	Chat(ctx context.Context, question, language string) (*ChatResult, error)

	// Summarize condenses text into the requested language.
	Summarize(ctx context.Context, text, language string) (string, error)

	// ValidateKeys checks a candidate key pair with the remote service.
	// Unlike the other operations it uses the given pair, not the
	// stored one.
	ValidateKeys(ctx context.Context, creds domain.Credentials) error
}
