package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the API key pair",
	Long: `Manage the OpenAI and Tavily API keys used for all remote calls.

Keys are validated with the remote service before they are stored, and
are always stored as a pair.`,
}

var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and store the API key pair",
	RunE:  runKeysSet,
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored keys, redacted",
	RunE:  runKeysShow,
}

var keysClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored key pair",
	RunE:  runKeysClear,
}

// Key flags for non-interactive use.
var (
	keysOpenAI string
	keysTavily string
)

func init() {
	keysSetCmd.Flags().StringVar(&keysOpenAI, "openai-key", "", "OpenAI API key (prompted when omitted)")
	keysSetCmd.Flags().StringVar(&keysTavily, "tavily-key", "", "Tavily API key (prompted when omitted)")

	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysShowCmd)
	keysCmd.AddCommand(keysClearCmd)
	rootCmd.AddCommand(keysCmd)
}

// promptSecret reads a key from the terminal without echoing it.
func promptSecret(cmd *cobra.Command, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; pass --openai-key and --tavily-key")
	}

	fmt.Fprint(cmd.OutOrStdout(), label)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func runKeysSet(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	openAIKey := keysOpenAI
	tavilyKey := keysTavily
	var err error

	if openAIKey == "" {
		if openAIKey, err = promptSecret(cmd, "OpenAI API key: "); err != nil {
			return err
		}
	}
	if tavilyKey == "" {
		if tavilyKey, err = promptSecret(cmd, "Tavily API key: "); err != nil {
			return err
		}
	}

	creds := domain.Credentials{OpenAIKey: openAIKey, TavilyKey: tavilyKey}
	if err := credentialsService.Save(context.Background(), creds); err != nil {
		return fmt.Errorf("failed to save keys: %w", err)
	}

	cmd.Println("Keys validated and stored.")
	return nil
}

func runKeysShow(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	masked, err := credentialsService.MaskedView(context.Background())
	if err != nil {
		if errors.Is(err, domain.ErrNoCredentials) {
			cmd.Println("No keys stored. Run 'intramate keys set' first.")
			return nil
		}
		return fmt.Errorf("failed to read keys: %w", err)
	}

	cmd.Printf("OpenAI key: %s\n", masked.OpenAIKey)
	cmd.Printf("Tavily key: %s\n", masked.TavilyKey)
	return nil
}

func runKeysClear(cmd *cobra.Command, _ []string) error {
	if credentialsService == nil {
		return errors.New("credentials service not configured")
	}

	if err := credentialsService.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear keys: %w", err)
	}

	cmd.Println("Keys removed.")
	return nil
}
