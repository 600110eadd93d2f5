package services

import (
	"context"
	"sync"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
)

// mockGateway is a hand-rolled driven.RAGGateway for service tests.
type mockGateway struct {
	mu sync.Mutex

	chatResult   *driven.ChatResult
	chatErr      error
	chatCalls    int
	chatBlock    chan struct{}
	chatRequests []string

	uploadResults map[string]*driven.UploadResult
	uploadErrs    map[string]error
	uploadSteps   []int64
	uploaded      []string

	documents []domain.Document
	listErr   error
	listCalls int

	deleteErr error
	deleted   []string

	summary    string
	summaryErr error

	validateErr   error
	validateCalls int
}

var _ driven.RAGGateway = (*mockGateway)(nil)

func (m *mockGateway) UploadDocument(_ context.Context, file domain.PendingFile, progress driven.ProgressFunc) (*driven.UploadResult, error) {
	m.mu.Lock()
	m.uploaded = append(m.uploaded, file.Name)
	steps := m.uploadSteps
	result := m.uploadResults[file.Name]
	err := m.uploadErrs[file.Name]
	m.mu.Unlock()

	if progress != nil {
		for _, sent := range steps {
			progress(sent, file.Size)
		}
	}
	if err != nil {
		return nil, err
	}
	if progress != nil {
		progress(file.Size, file.Size)
	}
	if result == nil {
		result = &driven.UploadResult{Chunks: 1}
	}
	return result, nil
}

func (m *mockGateway) ListDocuments(context.Context) ([]domain.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.Document, len(m.documents))
	copy(out, m.documents)
	return out, nil
}

func (m *mockGateway) DeleteDocument(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, path)
	return nil
}

func (m *mockGateway) Chat(_ context.Context, question, _ string) (*driven.ChatResult, error) {
	m.mu.Lock()
	m.chatCalls++
	m.chatRequests = append(m.chatRequests, question)
	block := m.chatBlock
	m.mu.Unlock()

	if block != nil {
		<-block
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.chatErr != nil {
		return nil, m.chatErr
	}
	if m.chatResult != nil {
		return m.chatResult, nil
	}
	return &driven.ChatResult{Answer: "answer to " + question}, nil
}

func (m *mockGateway) Summarize(_ context.Context, _, _ string) (string, error) {
	if m.summaryErr != nil {
		return "", m.summaryErr
	}
	return m.summary, nil
}

func (m *mockGateway) ValidateKeys(context.Context, domain.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validateCalls++
	return m.validateErr
}

// mockSink is a hand-rolled driven.FeedbackSink.
type mockSink struct {
	mu        sync.Mutex
	reports   []domain.FeedbackReport
	recordErr error
}

var _ driven.FeedbackSink = (*mockSink)(nil)

func (m *mockSink) Record(_ context.Context, report domain.FeedbackReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.recordErr != nil {
		return m.recordErr
	}
	m.reports = append(m.reports, report)
	return nil
}
