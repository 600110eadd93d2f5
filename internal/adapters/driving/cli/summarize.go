package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [file]",
	Short: "Summarize a text file",
	Long: `Summarize the contents of a text file in the configured language.

Pass "-" to read the text from stdin. The summary is independent of the
chat transcript.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

// summarizeLanguage overrides the configured summary language.
var summarizeLanguage string

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeLanguage, "language", "l", "", "Summary language (default from config)")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if chatService == nil {
		return errors.New("chat service not configured")
	}

	var text []byte
	var err error
	if args[0] == "-" {
		text, err = io.ReadAll(cmd.InOrStdin())
	} else {
		text, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	language := defaultLanguage(summarizeLanguage)
	summary, err := chatService.Summarize(context.Background(), string(text), language)
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}

	cmd.Println(summary)
	return nil
}
