package mcp

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// mockChatService is a mock implementation of driving.ChatService.
type mockChatService struct {
	answer  *domain.Message
	summary string
	history []domain.Message
	err     error
}

func (m *mockChatService) Ask(_ context.Context, _, _ string) (*domain.Message, error) {
	return m.answer, m.err
}

func (m *mockChatService) History(_ context.Context) ([]domain.Message, error) {
	return m.history, m.err
}

func (m *mockChatService) Clear(_ context.Context) error {
	return m.err
}

func (m *mockChatService) AnnotateFeedback(_ context.Context, _ int, _ domain.Verdict) error {
	return m.err
}

func (m *mockChatService) Summarize(_ context.Context, _, _ string) (string, error) {
	return m.summary, m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	err       error
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Refresh(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Remove(_ context.Context, _ string) error {
	return m.err
}
