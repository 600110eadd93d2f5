package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the knowledge base"`
	Language string `json:"language,omitempty" jsonschema:"answer language (default English)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer     string         `json:"answer"`
	SourceType string         `json:"source_type,omitempty"`
	Documents  []SourceOutput `json:"documents,omitempty"`
	Web        []WebOutput    `json:"web,omitempty"`
}

// SourceOutput is a document attribution entry.
type SourceOutput struct {
	Source  string `json:"source"`
	Preview string `json:"preview,omitempty"`
}

// WebOutput is a web attribution entry.
type WebOutput struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// ListDocumentsInput is the input schema for the list_documents tool.
type ListDocumentsInput struct{}

// ListDocumentsOutput is the output schema for the list_documents tool.
type ListDocumentsOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents a single indexed document.
type DocumentOutput struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Chunks int    `json:"chunks"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Ask a question answered from the indexed documents, with source attribution",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents currently indexed in the knowledge base",
	}, s.handleListDocuments)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Chat.Ask(ctx, input.Question, input.Language)
	if err != nil && answer == nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{Answer: answer.Content}
	if answer.Sources != nil {
		output.SourceType = string(answer.Sources.Type)
		for _, doc := range answer.Sources.Documents {
			output.Documents = append(output.Documents, SourceOutput{
				Source:  doc.Source,
				Preview: doc.Preview,
			})
		}
		for _, ref := range answer.Sources.Web {
			output.Web = append(output.Web, WebOutput{URL: ref.URL, Title: ref.Title})
		}
	}

	return nil, output, nil
}

// handleListDocuments handles the list_documents tool invocation.
func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	if s.ports.Document == nil {
		return nil, ListDocumentsOutput{}, errors.New("document service not configured")
	}

	docs, err := s.ports.Document.List(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, err
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i := range docs {
		output.Documents[i] = DocumentOutput{
			Name:   docs[i].Name,
			Path:   docs[i].Path,
			Chunks: docs[i].ChunkCount,
		}
	}

	return nil, output, nil
}
