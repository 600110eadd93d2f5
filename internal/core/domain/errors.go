package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoCredentials indicates no API key pair has been saved yet.
	// All remote calls except key validation require a stored pair.
	ErrNoCredentials = errors.New("no credentials configured")

	// ErrAskInFlight indicates a chat request is already outstanding.
	// A second ask is rejected rather than interleaved so the transcript
	// order always matches request-issue order.
	ErrAskInFlight = errors.New("a question is already in flight")

	// ErrBatchInProgress indicates an upload batch is already running.
	ErrBatchInProgress = errors.New("upload batch already in progress")

	// ErrNotAssistantMessage indicates feedback was aimed at a message
	// that is not an assistant answer.
	ErrNotAssistantMessage = errors.New("message is not an assistant answer")

	// ErrMalformedSources indicates a source payload where the tag and
	// the populated arrays disagree, or both variants are populated.
	ErrMalformedSources = errors.New("malformed sources payload")

	// ErrNoFeedbackDraft indicates no feedback collection is open.
	ErrNoFeedbackDraft = errors.New("no feedback collection in progress")

	// ErrFeedbackDraftOpen indicates a feedback collection is already open.
	ErrFeedbackDraftOpen = errors.New("feedback collection already in progress")
)

// ErrorCategory classifies a failed operation for reporting.
type ErrorCategory string

const (
	// CategoryValidation is a client-side failure resolved before any
	// network traffic (bad file, missing credentials).
	CategoryValidation ErrorCategory = "validation"

	// CategoryAuth means the remote rejected the stored credentials.
	CategoryAuth ErrorCategory = "auth"

	// CategoryServer means the remote was reached but answered with a
	// non-success response carrying a detail string.
	CategoryServer ErrorCategory = "server"

	// CategoryTransport means the request was sent but no response
	// arrived (network failure, timeout).
	CategoryTransport ErrorCategory = "transport"
)

// RemoteError describes a failed remote call in the client's taxonomy.
type RemoteError struct {
	// Category is the normalized failure class.
	Category ErrorCategory

	// Detail is the server-supplied or transport-level description.
	Detail string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	if e.Detail != "" {
		return string(e.Category) + ": " + e.Detail
	}
	if e.Err != nil {
		return string(e.Category) + ": " + e.Err.Error()
	}
	return string(e.Category) + " error"
}

// Unwrap returns the underlying error.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Categorize returns the error category for err.
// Unrecognized errors are treated as transport failures.
func Categorize(err error) ErrorCategory {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Category
	}
	if errors.Is(err, ErrNoCredentials) || errors.Is(err, ErrInvalidInput) {
		return CategoryValidation
	}
	return CategoryTransport
}
