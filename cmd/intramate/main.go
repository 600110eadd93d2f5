// Command intramate is the IntraMate client: upload documents, chat
// against them, and manage the remote knowledge base.
package main

import (
	"fmt"
	"os"

	"github.com/intramate/intramate-cli/internal/adapters/driven/config/file"
	"github.com/intramate/intramate-cli/internal/adapters/driven/feedback"
	"github.com/intramate/intramate-cli/internal/adapters/driven/ragapi"
	"github.com/intramate/intramate-cli/internal/adapters/driven/storage/sqlite"
	"github.com/intramate/intramate-cli/internal/adapters/driving/cli"
	"github.com/intramate/intramate-cli/internal/core/services"
)

// version is set at build time via
// -ldflags "-X main.version=v0.1.0".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	gateway, err := ragapi.NewClient(ragapi.Config{
		BaseURL:           settings.ServerURL,
		RequestsPerSecond: settings.RequestsPerSecond,
	}, store.CredentialsStore())
	if err != nil {
		return fmt.Errorf("creating service client: %w", err)
	}

	chatService := services.NewChatService(gateway, store.TranscriptStore())

	cli.SetServices(cli.Services{
		Chat:        chatService,
		Upload:      services.NewUploadService(gateway),
		Document:    services.NewDocumentService(gateway),
		Credentials: services.NewCredentialsService(gateway, store.CredentialsStore()),
		Feedback:    services.NewFeedbackService(chatService, feedback.NewLogSink()),
		Attribution: services.NewAttributionService(),
		Settings:    settingsStore,
	})
	cli.SetVersion(version)

	return cli.Execute()
}
