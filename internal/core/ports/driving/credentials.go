package driving

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// CredentialsService manages the API key pair. Save validates the pair
// with the remote service before persisting it; a rejected pair leaves
// the store untouched.
type CredentialsService interface {
	// Save validates and stores the key pair.
	Save(ctx context.Context, creds domain.Credentials) error

	// Get returns the stored pair, or domain.ErrNoCredentials.
	Get(ctx context.Context) (domain.Credentials, error)

	// MaskedView returns the stored pair redacted for display.
	MaskedView(ctx context.Context) (domain.Credentials, error)

	// Clear removes the stored pair.
	Clear(ctx context.Context) error
}
