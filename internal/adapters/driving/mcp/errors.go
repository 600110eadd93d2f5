// Package mcp exposes the knowledge base as a Model Context Protocol
// server, so AI assistants can ask questions and browse documents.
package mcp

import "errors"

// ErrMissingChatService is returned when the chat service port is not configured.
var ErrMissingChatService = errors.New("mcp: chat service is required")
