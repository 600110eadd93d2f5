package driven

import (
	"context"

	"github.com/intramate/intramate-cli/internal/core/domain"
)

// CredentialsStore persists the API key pair. The pair is always
// written and removed as a unit.
type CredentialsStore interface {
	// Save replaces the stored key pair.
	Save(ctx context.Context, creds domain.Credentials) error

	// Get returns the stored key pair, or domain.ErrNoCredentials when
	// none has been saved.
	Get(ctx context.Context) (domain.Credentials, error)

	// Clear removes the stored key pair.
	Clear(ctx context.Context) error
}
