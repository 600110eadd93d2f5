package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// Chat Command Tests

func TestChatCmd_Use(t *testing.T) {
	assert.Equal(t, "chat", chatCmd.Use)
}

func TestChatCmd_Short(t *testing.T) {
	assert.Equal(t, "Converse with the knowledge base", chatCmd.Short)
}

func TestChatCmd_HasSubcommands(t *testing.T) {
	commands := chatCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "ask")
	assert.Contains(t, commandNames, "history")
	assert.Contains(t, commandNames, "clear")
	assert.Contains(t, commandNames, "feedback")
}

// Chat Ask Tests

func TestChatAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", chatAskCmd.Use)
}

func TestChatAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestChatAskCmd_PrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "what is the leave policy?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "answer to what is the leave policy?")
}

func TestChatAskCmd_LanguageFlagWins(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubChatService{}
	chatService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "hola?", "--language", "Spanish"})
	defer func() {
		rootCmd.SetArgs(nil)
		chatLanguage = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, stub.languages, 1)
	assert.Equal(t, "Spanish", stub.languages[0])
}

func TestChatAskCmd_DefaultLanguageFromSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubChatService{}
	chatService = stub
	settingsStore = &stubSettingsStore{settings: domain.Settings{Language: "German"}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "wie bitte?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.Len(t, stub.languages, 1)
	assert.Equal(t, "German", stub.languages[0])
}

func TestChatAskCmd_PrintsDocumentSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answer := domain.NewAssistantMessage("See the handbook.", domain.NewDocumentSources([]domain.DocumentSource{
		{Source: "handbook.pdf", Preview: "Employees accrue 25 days..."},
	}))
	chatService = &stubChatService{answer: &answer}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "how many leave days?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "See the handbook.")
	assert.Contains(t, buf.String(), "Sources (1 documents):")
	assert.Contains(t, buf.String(), "handbook.pdf")
	assert.Contains(t, buf.String(), "Employees accrue 25 days...")
}

func TestChatAskCmd_PrintsWebSources(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answer := domain.NewAssistantMessage("From the web.", domain.NewWebSources([]domain.WebReference{
		{URL: "https://example.com/a", Title: "Example"},
	}))
	chatService = &stubChatService{answer: &answer}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "anything recent?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Sources (1 web results):")
	assert.Contains(t, buf.String(), "Example (https://example.com/a)")
}

func TestChatAskCmd_FoldedFailureStillPrintsAnswer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	answer := domain.NewAssistantMessage("The assistant is unavailable right now.", nil)
	chatService = &stubChatService{
		answer: &answer,
		askErr: &domain.RemoteError{Category: domain.CategoryServer, Detail: "internal error"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "The assistant is unavailable right now.")
}

func TestChatAskCmd_TransportErrorFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	chatService = &stubChatService{
		answer: nil,
		askErr: &domain.RemoteError{Category: domain.CategoryTransport, Detail: "connection refused"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get an answer")
}

func TestChatAskCmd_ServiceNotConfigured(t *testing.T) {
	oldService := chatService
	chatService = nil
	defer func() {
		chatService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "ask", "hello?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat service not configured")
}

// Chat History Tests

func TestChatHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", chatHistoryCmd.Use)
}

func TestChatHistoryCmd_EmptyTranscript(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No conversation yet.")
}

func TestChatHistoryCmd_PrintsTranscript(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	question := domain.NewUserMessage("how do I book a room?")
	answer := domain.NewAssistantMessage("Use the booking portal.", domain.NewDocumentSources([]domain.DocumentSource{
		{Source: "facilities.md"},
	}))
	answer.Feedback = domain.VerdictPositive
	chatService = &stubChatService{history: []domain.Message{question, answer}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[0] You: how do I book a room?")
	assert.Contains(t, buf.String(), "[1] IntraMate: Use the booking portal.")
	assert.Contains(t, buf.String(), "feedback: positive")
	assert.Contains(t, buf.String(), "sources: 1 (documents)")
}

func TestChatHistoryCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	chatService = &stubChatService{historyErr: errors.New("database locked")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load transcript")
}

func TestChatHistoryCmd_ServiceNotConfigured(t *testing.T) {
	oldService := chatService
	chatService = nil
	defer func() {
		chatService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat service not configured")
}

// Chat Clear Tests

func TestChatClearCmd_Use(t *testing.T) {
	assert.Equal(t, "clear", chatClearCmd.Use)
}

func TestChatClearCmd_ClearsTranscript(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubChatService{}
	chatService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Transcript cleared.")
	assert.True(t, stub.cleared)
}

func TestChatClearCmd_ServiceNotConfigured(t *testing.T) {
	oldService := chatService
	chatService = nil
	defer func() {
		chatService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "clear"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "chat service not configured")
}

// Chat Feedback Tests

func TestChatFeedbackCmd_Use(t *testing.T) {
	assert.Equal(t, "feedback [message-index]", chatFeedbackCmd.Use)
}

func TestChatFeedbackCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "feedback"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestChatFeedbackCmd_RejectsNonNumericIndex(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "feedback", "three"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "message index must be a number")
}

func TestChatFeedbackCmd_Positive(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubFeedbackService{}
	feedbackService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"chat", "feedback", "3"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Marked answer 3 as helpful.")
	assert.Equal(t, []int{3}, stub.positive)
}

func TestChatFeedbackCmd_NegativeWithReasonsAndNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubFeedbackService{}
	feedbackService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"chat", "feedback", "1",
		"--negative",
		"--reason", "inaccurate",
		"--reason", "incomplete",
		"--note", "cited the wrong handbook",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		chatFeedbackDown = false
		chatFeedbackReasons = nil
		chatFeedbackNote = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Recorded negative feedback on answer 1.")
	require.Len(t, stub.submitted, 1)
	report := stub.submitted[0]
	assert.Equal(t, 1, report.MessageIndex)
	assert.ElementsMatch(t,
		[]domain.FeedbackReason{domain.ReasonInaccurate, domain.ReasonIncomplete},
		report.Reasons,
	)
	assert.Equal(t, "cited the wrong handbook", report.Note)
}

func TestChatFeedbackCmd_NegativeBeginFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubFeedbackService{beginErr: domain.ErrNotAssistantMessage}
	feedbackService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "feedback", "0", "--negative", "--reason", "inaccurate"})
	defer func() {
		rootCmd.SetArgs(nil)
		chatFeedbackDown = false
		chatFeedbackReasons = nil
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start feedback")
	assert.Empty(t, stub.submitted)
}

func TestChatFeedbackCmd_ServiceNotConfigured(t *testing.T) {
	oldService := feedbackService
	feedbackService = nil
	defer func() {
		feedbackService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"chat", "feedback", "1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "feedback service not configured")
}
