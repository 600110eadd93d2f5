package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// ChatService manages the conversation transcript. The transcript is
// lazily loaded from the store on first use, and every mutation is
// persisted as a whole value before it becomes observable. The lock is
// released while a remote call is in flight so History stays
// responsive; the asking flag keeps the transcript single-writer.
type ChatService struct {
	gateway driven.RAGGateway
	store   driven.TranscriptStore

	mu       sync.Mutex
	messages []domain.Message
	loaded   bool
	asking   bool
}

var _ driving.ChatService = (*ChatService)(nil)

// NewChatService creates a ChatService backed by the given gateway and
// transcript store. The store may be nil, in which case the transcript
// lives only in memory.
func NewChatService(gateway driven.RAGGateway, store driven.TranscriptStore) *ChatService {
	return &ChatService{gateway: gateway, store: store}
}

// ensureLoaded loads the transcript from the store once.
// Caller must hold the lock.
func (s *ChatService) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	if s.store != nil {
		messages, err := s.store.Load(ctx)
		if err != nil {
			return fmt.Errorf("loading transcript: %w", err)
		}
		s.messages = messages
	}
	s.loaded = true
	return nil
}

// persist writes the whole transcript to the store.
// Caller must hold the lock.
func (s *ChatService) persist(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, s.messages); err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}
	return nil
}

// Ask appends the question, sends it, and appends the answer. A second
// Ask while one is outstanding is rejected with domain.ErrAskInFlight
// so transcript order always matches request-issue order.
func (s *ChatService) Ask(ctx context.Context, question, language string) (*domain.Message, error) {
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}
	if language == "" {
		language = domain.DefaultLanguage
	}

	s.mu.Lock()
	if err := s.ensureLoaded(ctx); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.asking {
		s.mu.Unlock()
		return nil, domain.ErrAskInFlight
	}
	s.asking = true

	s.messages = append(s.messages, domain.NewUserMessage(question))
	if err := s.persist(ctx); err != nil {
		s.messages = s.messages[:len(s.messages)-1]
		s.asking = false
		s.mu.Unlock()
		return nil, err
	}
	s.mu.Unlock()

	logger.Debug("asking %q (language: %s)", question, language)
	result, askErr := s.gateway.Chat(ctx, question, language)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.asking = false

	if askErr != nil {
		folded, ok := foldChatError(askErr)
		if !ok {
			// Transport failure: the question stays pending in the
			// transcript and the caller decides how to surface it.
			return nil, askErr
		}
		s.messages = append(s.messages, folded)
		if err := s.persist(ctx); err != nil {
			// Roll back so memory never diverges from the store; the
			// question stays pending like any other unanswered ask.
			s.messages = s.messages[:len(s.messages)-1]
			return nil, err
		}
		answer := folded
		return &answer, askErr
	}

	answer := domain.NewAssistantMessage(result.Answer, result.Sources)
	s.messages = append(s.messages, answer)
	if err := s.persist(ctx); err != nil {
		s.messages = s.messages[:len(s.messages)-1]
		return nil, err
	}
	return &answer, nil
}

// foldChatError turns an auth or server failure into a synthesized
// assistant message so the conversation records what happened. It
// returns false for failures that should not enter the transcript.
func foldChatError(err error) (domain.Message, bool) {
	var remote *domain.RemoteError
	if !errors.As(err, &remote) {
		return domain.Message{}, false
	}
	switch remote.Category {
	case domain.CategoryAuth:
		return domain.NewAssistantMessage(
			"I can't reach the knowledge base: the stored API keys were rejected. "+
				"Please update them in settings and ask again.", nil), true
	case domain.CategoryServer:
		detail := remote.Detail
		if detail == "" {
			detail = "the service reported an internal error"
		}
		return domain.NewAssistantMessage(
			fmt.Sprintf("Something went wrong while answering: %s. Please try again.", detail), nil), true
	default:
		return domain.Message{}, false
	}
}

// History returns a copy of the transcript in conversation order.
func (s *ChatService) History(ctx context.Context) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

// Clear discards the transcript in the store and in memory.
func (s *ChatService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("clearing transcript: %w", err)
		}
	}
	s.messages = nil
	s.loaded = true
	return nil
}

// AnnotateFeedback sets the verdict on the assistant message at index.
// A later verdict overwrites an earlier one.
func (s *ChatService) AnnotateFeedback(ctx context.Context, index int, verdict domain.Verdict) error {
	if verdict != domain.VerdictPositive && verdict != domain.VerdictNegative {
		return fmt.Errorf("%w: unknown verdict %q", domain.ErrInvalidInput, verdict)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	if index < 0 || index >= len(s.messages) {
		return fmt.Errorf("%w: message %d", domain.ErrNotFound, index)
	}
	if !s.messages[index].IsAssistant() {
		return domain.ErrNotAssistantMessage
	}

	previous := s.messages[index].Feedback
	s.messages[index].Feedback = verdict
	if err := s.persist(ctx); err != nil {
		s.messages[index].Feedback = previous
		return err
	}
	return nil
}

// Summarize condenses text into the given language. The summary is not
// part of the conversation and never enters the transcript.
func (s *ChatService) Summarize(ctx context.Context, text, language string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text must not be empty", domain.ErrInvalidInput)
	}
	if language == "" {
		language = domain.DefaultLanguage
	}
	return s.gateway.Summarize(ctx, text, language)
}
