package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// FeedbackService collects verdicts on assistant answers. Positive
// verdicts are recorded immediately on the transcript; negative
// verdicts go through a draft of reason tags and an optional note.
type FeedbackService struct {
	chat driving.ChatService
	sink driven.FeedbackSink

	mu    sync.Mutex
	draft *domain.FeedbackDraft
}

var _ driving.FeedbackService = (*FeedbackService)(nil)

// NewFeedbackService creates a FeedbackService. The sink may be nil,
// in which case submitted reports are discarded after the verdict is
// recorded.
func NewFeedbackService(chat driving.ChatService, sink driven.FeedbackSink) *FeedbackService {
	return &FeedbackService{chat: chat, sink: sink}
}

// RecordPositive marks the assistant message at index as helpful.
func (s *FeedbackService) RecordPositive(ctx context.Context, index int) error {
	return s.chat.AnnotateFeedback(ctx, index, domain.VerdictPositive)
}

// Begin opens a negative-feedback draft for the message at index.
// Only one draft may be open at a time.
func (s *FeedbackService) Begin(ctx context.Context, index int) (*domain.FeedbackDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft != nil {
		return nil, domain.ErrFeedbackDraftOpen
	}

	messages, err := s.chat.History(ctx)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(messages) {
		return nil, fmt.Errorf("%w: message %d", domain.ErrNotFound, index)
	}
	if !messages[index].IsAssistant() {
		return nil, domain.ErrNotAssistantMessage
	}

	s.draft = domain.NewFeedbackDraft(uuid.NewString(), index)
	return s.draft, nil
}

// ToggleReason flips a reason tag on the open draft.
func (s *FeedbackService) ToggleReason(reason domain.FeedbackReason) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return false, domain.ErrNoFeedbackDraft
	}
	return s.draft.ToggleReason(reason), nil
}

// SetNote sets the free-text note on the open draft.
func (s *FeedbackService) SetNote(note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return domain.ErrNoFeedbackDraft
	}
	s.draft.Note = note
	return nil
}

// Draft returns the open draft, or nil.
func (s *FeedbackService) Draft() *domain.FeedbackDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Submit finalises the open draft: the report goes to the sink, the
// negative verdict lands on the transcript, and the draft closes.
func (s *FeedbackService) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return domain.ErrNoFeedbackDraft
	}
	report := s.draft.Report()
	s.mu.Unlock()

	if s.sink != nil {
		if err := s.sink.Record(ctx, report); err != nil {
			return fmt.Errorf("recording feedback: %w", err)
		}
	} else {
		logger.Debug("no feedback sink configured, report for message %d discarded", report.MessageIndex)
	}

	if err := s.chat.AnnotateFeedback(ctx, report.MessageIndex, domain.VerdictNegative); err != nil {
		return err
	}

	s.mu.Lock()
	s.draft = nil
	s.mu.Unlock()
	return nil
}

// Cancel discards the open draft without side effects.
func (s *FeedbackService) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
}
