package tui

import "errors"

// ErrMissingChatService is returned when the chat service port is not configured.
var ErrMissingChatService = errors.New("tui: chat service is required")

// ErrMissingDocumentService is returned when the document service port is not configured.
var ErrMissingDocumentService = errors.New("tui: document service is required")
