package services

import (
	"context"
	"fmt"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
	"github.com/intramate/intramate-cli/internal/core/ports/driving"
	"github.com/intramate/intramate-cli/internal/logger"
)

// CredentialsService manages the API key pair. A pair is stored only
// after the remote validation endpoint accepts it; a rejected or
// incomplete pair leaves the store untouched.
type CredentialsService struct {
	gateway driven.RAGGateway
	store   driven.CredentialsStore
}

var _ driving.CredentialsService = (*CredentialsService)(nil)

// NewCredentialsService creates a CredentialsService backed by the
// gateway and store.
func NewCredentialsService(gateway driven.RAGGateway, store driven.CredentialsStore) *CredentialsService {
	return &CredentialsService{gateway: gateway, store: store}
}

// Save validates the pair with the remote service, then persists it.
func (s *CredentialsService) Save(ctx context.Context, creds domain.Credentials) error {
	if !creds.Complete() {
		return fmt.Errorf("%w: both keys are required", domain.ErrInvalidInput)
	}
	if err := s.gateway.ValidateKeys(ctx, creds); err != nil {
		return fmt.Errorf("validating keys: %w", err)
	}
	if err := s.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("storing keys: %w", err)
	}
	logger.Info("credentials validated and stored")
	return nil
}

// Get returns the stored pair, or domain.ErrNoCredentials.
func (s *CredentialsService) Get(ctx context.Context) (domain.Credentials, error) {
	return s.store.Get(ctx)
}

// MaskedView returns the stored pair redacted for display.
func (s *CredentialsService) MaskedView(ctx context.Context) (domain.Credentials, error) {
	creds, err := s.store.Get(ctx)
	if err != nil {
		return domain.Credentials{}, err
	}
	return creds.Masked(), nil
}

// Clear removes the stored pair.
func (s *CredentialsService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
