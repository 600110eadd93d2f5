package cli

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
)

// stubChatService implements driving.ChatService for command tests.
type stubChatService struct {
	answer     *domain.Message
	askErr     error
	history    []domain.Message
	historyErr error
	summary    string
	cleared    bool
	questions  []string
	languages  []string
}

func (s *stubChatService) Ask(_ context.Context, question, language string) (*domain.Message, error) {
	s.questions = append(s.questions, question)
	s.languages = append(s.languages, language)
	if s.answer != nil || s.askErr != nil {
		return s.answer, s.askErr
	}
	answer := domain.NewAssistantMessage("answer to "+question, nil)
	return &answer, nil
}

func (s *stubChatService) History(_ context.Context) ([]domain.Message, error) {
	return s.history, s.historyErr
}

func (s *stubChatService) Clear(_ context.Context) error {
	s.cleared = true
	return nil
}

func (s *stubChatService) AnnotateFeedback(_ context.Context, _ int, _ domain.Verdict) error {
	return nil
}

func (s *stubChatService) Summarize(_ context.Context, _, _ string) (string, error) {
	if s.summary != "" {
		return s.summary, nil
	}
	return "a short summary", nil
}

// stubUploadService implements driving.UploadService for command tests.
type stubUploadService struct {
	runErr error
	state  *domain.BatchState
	files  [][]domain.PendingFile
}

func (s *stubUploadService) Run(
	_ context.Context,
	files []domain.PendingFile,
	observer driving.BatchObserver,
) (*domain.BatchState, error) {
	s.files = append(s.files, files)
	if s.runErr != nil {
		return s.state, s.runErr
	}

	state := domain.NewBatchState("batch-1", files)
	for i := range files {
		state.Begin(i)
		state.Complete(i, 3)
	}
	state.Finish()
	if observer != nil {
		observer(state.Snapshot())
	}
	snapshot := state.Snapshot()
	return &snapshot, nil
}

func (s *stubUploadService) State() domain.BatchState {
	if s.state != nil {
		return *s.state
	}
	return domain.BatchState{}
}

// stubDocumentService implements driving.DocumentService for command tests.
type stubDocumentService struct {
	documents []domain.Document
	listErr   error
	removed   []string
	removeErr error
}

func (s *stubDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return s.documents, s.listErr
}

func (s *stubDocumentService) Refresh(_ context.Context) ([]domain.Document, error) {
	return s.documents, s.listErr
}

func (s *stubDocumentService) Remove(_ context.Context, path string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, path)
	return nil
}

// stubCredentialsService implements driving.CredentialsService for command tests.
type stubCredentialsService struct {
	stored   *domain.Credentials
	saveErr  error
	getErr   error
	clearErr error
}

func (s *stubCredentialsService) Save(_ context.Context, creds domain.Credentials) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = &creds
	return nil
}

func (s *stubCredentialsService) Get(_ context.Context) (domain.Credentials, error) {
	if s.getErr != nil {
		return domain.Credentials{}, s.getErr
	}
	if s.stored == nil {
		return domain.Credentials{}, domain.ErrNoCredentials
	}
	return *s.stored, nil
}

func (s *stubCredentialsService) MaskedView(_ context.Context) (domain.Credentials, error) {
	creds, err := s.Get(context.Background())
	if err != nil {
		return domain.Credentials{}, err
	}
	return creds.Masked(), nil
}

func (s *stubCredentialsService) Clear(_ context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.stored = nil
	return nil
}

// stubFeedbackService implements driving.FeedbackService for command tests.
type stubFeedbackService struct {
	positive  []int
	draft     *domain.FeedbackDraft
	submitted []domain.FeedbackReport
	beginErr  error
}

func (s *stubFeedbackService) RecordPositive(_ context.Context, index int) error {
	s.positive = append(s.positive, index)
	return nil
}

func (s *stubFeedbackService) Begin(_ context.Context, index int) (*domain.FeedbackDraft, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	s.draft = domain.NewFeedbackDraft("draft-1", index)
	return s.draft, nil
}

func (s *stubFeedbackService) ToggleReason(reason domain.FeedbackReason) (bool, error) {
	if s.draft == nil {
		return false, domain.ErrNoFeedbackDraft
	}
	return s.draft.ToggleReason(reason), nil
}

func (s *stubFeedbackService) SetNote(note string) error {
	if s.draft == nil {
		return domain.ErrNoFeedbackDraft
	}
	s.draft.Note = note
	return nil
}

func (s *stubFeedbackService) Draft() *domain.FeedbackDraft {
	return s.draft
}

func (s *stubFeedbackService) Submit(_ context.Context) error {
	if s.draft == nil {
		return domain.ErrNoFeedbackDraft
	}
	s.submitted = append(s.submitted, s.draft.Report())
	s.draft = nil
	return nil
}

func (s *stubFeedbackService) Cancel() {
	s.draft = nil
}

// stubAttributionService implements driving.AttributionService for command tests.
type stubAttributionService struct {
	expanded map[int]bool
}

func (s *stubAttributionService) Toggle(index int) bool {
	if s.expanded == nil {
		s.expanded = map[int]bool{}
	}
	if s.expanded[index] {
		delete(s.expanded, index)
		return false
	}
	s.expanded[index] = true
	return true
}

func (s *stubAttributionService) Expanded(index int) bool {
	return s.expanded[index]
}

func (s *stubAttributionService) Reset() {
	s.expanded = nil
}

// stubSettingsStore implements driven.SettingsStore for command tests.
type stubSettingsStore struct {
	settings domain.Settings
	loadErr  error
	saveErr  error
}

func (s *stubSettingsStore) Load() (domain.Settings, error) {
	if s.loadErr != nil {
		return domain.Settings{}, s.loadErr
	}
	return s.settings.Normalize(), nil
}

func (s *stubSettingsStore) Save(settings domain.Settings) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.settings = settings
	return nil
}

// testDocs returns a small document fixture.
func testDocs() []domain.Document {
	return []domain.Document{
		{Name: "handbook.pdf", Path: "docs/handbook.pdf", ChunkCount: 42, Previews: []string{"Welcome aboard..."}},
		{Name: "onboarding.md", Path: "docs/onboarding.md", ChunkCount: 7},
	}
}

// setupTestServices wires stub services into the command tree and
// returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldChat := chatService
	oldUpload := uploadService
	oldDocument := documentService
	oldCredentials := credentialsService
	oldFeedback := feedbackService
	oldAttribution := attributionService
	oldSettings := settingsStore

	SetServices(Services{
		Chat:        &stubChatService{},
		Upload:      &stubUploadService{},
		Document:    &stubDocumentService{documents: testDocs()},
		Credentials: &stubCredentialsService{},
		Feedback:    &stubFeedbackService{},
		Attribution: &stubAttributionService{},
		Settings:    &stubSettingsStore{settings: domain.DefaultSettings()},
	})

	return func() {
		chatService = oldChat
		uploadService = oldUpload
		documentService = oldDocument
		credentialsService = oldCredentials
		feedbackService = oldFeedback
		attributionService = oldAttribution
		settingsStore = oldSettings
	}
}
