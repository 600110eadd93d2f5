package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Converse with the knowledge base",
	Long:  `Ask questions, review the transcript, and give feedback on answers.`,
}

var chatAskCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatAsk,
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the conversation transcript",
	RunE:  runChatHistory,
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the conversation transcript",
	RunE:  runChatClear,
}

var chatFeedbackCmd = &cobra.Command{
	Use:   "feedback [message-index]",
	Short: "Record feedback on an answer",
	Long: `Record feedback on the answer at the given transcript index.

Positive feedback is recorded immediately. Negative feedback takes one
or more --reason tags and an optional --note.`,
	Args: cobra.ExactArgs(1),
	RunE: runChatFeedback,
}

// Chat flags.
var (
	chatLanguage        string
	chatFeedbackDown    bool
	chatFeedbackReasons []string
	chatFeedbackNote    string
)

func init() {
	chatAskCmd.Flags().StringVarP(&chatLanguage, "language", "l", "", "Answer language (default from config)")

	chatFeedbackCmd.Flags().BoolVar(&chatFeedbackDown, "negative", false, "Record negative feedback")
	chatFeedbackCmd.Flags().StringSliceVar(&chatFeedbackReasons, "reason", nil,
		"Reason tag for negative feedback (repeatable: inaccurate, incomplete, off_topic, bad_sources, hard_to_follow)")
	chatFeedbackCmd.Flags().StringVar(&chatFeedbackNote, "note", "", "Free-text note for negative feedback")

	chatCmd.AddCommand(chatAskCmd)
	chatCmd.AddCommand(chatHistoryCmd)
	chatCmd.AddCommand(chatClearCmd)
	chatCmd.AddCommand(chatFeedbackCmd)
	rootCmd.AddCommand(chatCmd)
}

// printSources renders an answer's attribution block.
func printSources(cmd *cobra.Command, sources *domain.Sources) {
	if sources == nil || sources.Count() == 0 {
		return
	}

	switch sources.Type {
	case domain.SourceDocuments:
		cmd.Printf("\nSources (%d documents):\n", len(sources.Documents))
		for _, doc := range sources.Documents {
			cmd.Printf("  - %s\n", doc.Source)
			if doc.Preview != "" {
				cmd.Printf("    %s\n", doc.Preview)
			}
		}
	case domain.SourceWeb:
		cmd.Printf("\nSources (%d web results):\n", len(sources.Web))
		for _, ref := range sources.Web {
			if ref.Title != "" {
				cmd.Printf("  - %s (%s)\n", ref.Title, ref.URL)
			} else {
				cmd.Printf("  - %s\n", ref.URL)
			}
		}
	}
}

func runChatAsk(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	question := args[0]
	language := defaultLanguage(chatLanguage)

	answer, err := chatService.Ask(context.Background(), question, language)
	if answer != nil {
		// Auth and server failures arrive as synthesized answers; print
		// them the same way as a real one.
		cmd.Println(answer.Content)
		printSources(cmd, answer.Sources)
	}
	if err != nil && answer == nil {
		return fmt.Errorf("failed to get an answer: %w", err)
	}
	return nil
}

func runChatHistory(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	messages, err := chatService.History(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	if len(messages) == 0 {
		cmd.Println("No conversation yet.")
		return nil
	}

	for i, msg := range messages {
		label := "You"
		if msg.IsAssistant() {
			label = "IntraMate"
		}
		cmd.Printf("[%d] %s: %s\n", i, label, msg.Content)
		if msg.Feedback != "" {
			cmd.Printf("    feedback: %s\n", msg.Feedback)
		}
		if msg.Sources != nil && msg.Sources.Count() > 0 {
			cmd.Printf("    sources: %d (%s)\n", msg.Sources.Count(), msg.Sources.Type)
		}
	}
	return nil
}

func runChatClear(cmd *cobra.Command, _ []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	if err := chatService.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}

	cmd.Println("Transcript cleared.")
	return nil
}

func runChatFeedback(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return errors.New("feedback service not configured")
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("message index must be a number: %w", err)
	}
	ctx := context.Background()

	if !chatFeedbackDown {
		if err := feedbackService.RecordPositive(ctx, index); err != nil {
			return fmt.Errorf("failed to record feedback: %w", err)
		}
		cmd.Printf("Marked answer %d as helpful.\n", index)
		return nil
	}

	if _, err := feedbackService.Begin(ctx, index); err != nil {
		return fmt.Errorf("failed to start feedback: %w", err)
	}

	for _, reason := range chatFeedbackReasons {
		if _, err := feedbackService.ToggleReason(domain.FeedbackReason(reason)); err != nil {
			feedbackService.Cancel()
			return fmt.Errorf("failed to record reason %q: %w", reason, err)
		}
	}
	if chatFeedbackNote != "" {
		if err := feedbackService.SetNote(chatFeedbackNote); err != nil {
			feedbackService.Cancel()
			return fmt.Errorf("failed to record note: %w", err)
		}
	}

	if err := feedbackService.Submit(ctx); err != nil {
		feedbackService.Cancel()
		return fmt.Errorf("failed to submit feedback: %w", err)
	}

	cmd.Printf("Recorded negative feedback on answer %d.\n", index)
	return nil
}
