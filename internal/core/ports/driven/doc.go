// Package driven defines the outbound interfaces the core services
// depend on. Adapters under internal/adapters/driven implement them.
//
// Required ports:
//   - RAGGateway: the remote document and chat service
//   - TranscriptStore: chat transcript persistence
//   - CredentialsStore: API key pair persistence
//   - SettingsStore: client configuration persistence
//
// Optional ports:
//   - FeedbackSink: destination for structured negative feedback
//
// Import rules: this package imports only the domain package. It never
// imports adapters or services.
package driven
