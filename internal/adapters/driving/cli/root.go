// Package cli implements the IntraMate command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Service handles used by the commands. Wired by SetServices before
// Execute; commands guard against missing services so tests can run
// subsets.
var (
	chatService        driving.ChatService
	uploadService      driving.UploadService
	documentService    driving.DocumentService
	credentialsService driving.CredentialsService
	feedbackService    driving.FeedbackService
	attributionService driving.AttributionService
	settingsStore      driven.SettingsStore
)

// Services bundles everything the CLI commands depend on.
type Services struct {
	Chat        driving.ChatService
	Upload      driving.UploadService
	Document    driving.DocumentService
	Credentials driving.CredentialsService
	Feedback    driving.FeedbackService
	Attribution driving.AttributionService
	Settings    driven.SettingsStore
}

// SetServices wires the service handles used by the commands.
func SetServices(s Services) {
	chatService = s.Chat
	uploadService = s.Upload
	documentService = s.Document
	credentialsService = s.Credentials
	feedbackService = s.Feedback
	attributionService = s.Attribution
	settingsStore = s.Settings
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// verbose enables debug logging on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "intramate",
	Short: "Chat with your organisation's document knowledge base",
	Long: `IntraMate is a client for a document-grounded assistant.

Upload internal documents, then ask questions and get answers grounded
in those documents, with source attribution for every answer.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// defaultLanguage resolves the answer language: an explicit flag wins,
// then the configured default.
func defaultLanguage(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if settingsStore != nil {
		if settings, err := settingsStore.Load(); err == nil {
			return settings.Language
		}
	}
	return ""
}
