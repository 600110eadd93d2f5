package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer with document sources", func(t *testing.T) {
		answer := domain.NewAssistantMessage(
			"Vacation requests go through the HR portal.",
			domain.NewDocumentSources([]domain.DocumentSource{
				{Source: "handbook.pdf", Preview: "Vacation requests..."},
			}),
		)
		mockChat := &mockChatService{answer: &answer}

		server, err := NewServer(&Ports{Chat: mockChat})
		require.NoError(t, err)

		input := AskInput{Question: "how do I request vacation?"}
		_, output, err := server.handleAsk(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "Vacation requests go through the HR portal.", output.Answer)
		assert.Equal(t, "documents", output.SourceType)
		require.Len(t, output.Documents, 1)
		assert.Equal(t, "handbook.pdf", output.Documents[0].Source)
		assert.Empty(t, output.Web)
	})

	t.Run("returns answer with web sources", func(t *testing.T) {
		answer := domain.NewAssistantMessage(
			"Go 1.24 was released in February 2025.",
			domain.NewWebSources([]domain.WebReference{
				{URL: "https://go.dev/blog/go1.24", Title: "Go 1.24 is released!"},
			}),
		)
		mockChat := &mockChatService{answer: &answer}

		server, err := NewServer(&Ports{Chat: mockChat})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "when was Go 1.24 released?"})

		require.NoError(t, err)
		assert.Equal(t, "web", output.SourceType)
		require.Len(t, output.Web, 1)
		assert.Equal(t, "https://go.dev/blog/go1.24", output.Web[0].URL)
	})

	t.Run("answer without sources", func(t *testing.T) {
		answer := domain.NewAssistantMessage("I don't know.", nil)
		mockChat := &mockChatService{answer: &answer}

		server, err := NewServer(&Ports{Chat: mockChat})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "anything?"})

		require.NoError(t, err)
		assert.Equal(t, "I don't know.", output.Answer)
		assert.Empty(t, output.SourceType)
	})

	t.Run("folded failure still yields the synthesized answer", func(t *testing.T) {
		answer := domain.NewAssistantMessage("Something went wrong while answering: index unavailable. Please try again.", nil)
		mockChat := &mockChatService{
			answer: &answer,
			err:    &domain.RemoteError{Category: domain.CategoryServer, Detail: "index unavailable"},
		}

		server, err := NewServer(&Ports{Chat: mockChat})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "what is the policy?"})

		require.NoError(t, err)
		assert.Contains(t, output.Answer, "Something went wrong")
	})

	t.Run("returns error when no answer was produced", func(t *testing.T) {
		mockChat := &mockChatService{
			err: &domain.RemoteError{Category: domain.CategoryTransport, Err: errors.New("connection refused")},
		}

		server, err := NewServer(&Ports{Chat: mockChat})
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "anyone home?"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestServer_handleListDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns indexed documents", func(t *testing.T) {
		mockDocs := &mockDocumentService{
			documents: []domain.Document{
				{Name: "handbook.pdf", Path: "docs/handbook.pdf", ChunkCount: 42},
				{Name: "onboarding.md", Path: "docs/onboarding.md", ChunkCount: 7},
			},
		}

		server, err := NewServer(&Ports{Chat: &mockChatService{}, Document: mockDocs})
		require.NoError(t, err)

		_, output, err := server.handleListDocuments(ctx, nil, ListDocumentsInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Documents, 2)
		assert.Equal(t, "handbook.pdf", output.Documents[0].Name)
		assert.Equal(t, "docs/handbook.pdf", output.Documents[0].Path)
		assert.Equal(t, 42, output.Documents[0].Chunks)
	})

	t.Run("returns error without document service", func(t *testing.T) {
		server, err := NewServer(&Ports{Chat: &mockChatService{}})
		require.NoError(t, err)

		_, _, err = server.handleListDocuments(ctx, nil, ListDocumentsInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		mockDocs := &mockDocumentService{err: errors.New("list failed")}

		server, err := NewServer(&Ports{Chat: &mockChatService{}, Document: mockDocs})
		require.NoError(t, err)

		_, _, err = server.handleListDocuments(ctx, nil, ListDocumentsInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list failed")
	})
}
