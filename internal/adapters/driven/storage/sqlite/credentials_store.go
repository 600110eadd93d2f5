package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
)

// credentialsStore implements driven.CredentialsStore. The key pair
// occupies a single row and is replaced as a unit.
type credentialsStore struct {
	store *Store
}

var _ driven.CredentialsStore = (*credentialsStore)(nil)

// Save replaces the stored key pair.
func (s *credentialsStore) Save(ctx context.Context, creds domain.Credentials) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO credentials (id, openai_key, tavily_key, updated_at)
		VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			openai_key = excluded.openai_key,
			tavily_key = excluded.tavily_key,
			updated_at = excluded.updated_at
	`, creds.OpenAIKey, creds.TavilyKey)

	if err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return nil
}

// Get retrieves the stored pair.
func (s *credentialsStore) Get(ctx context.Context) (domain.Credentials, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT openai_key, tavily_key FROM credentials WHERE id = 1")

	var creds domain.Credentials
	if err := row.Scan(&creds.OpenAIKey, &creds.TavilyKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Credentials{}, domain.ErrNoCredentials
		}
		return domain.Credentials{}, fmt.Errorf("scanning credentials: %w", err)
	}
	return creds, nil
}

// Clear removes the stored pair.
func (s *credentialsStore) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM credentials WHERE id = 1")
	if err != nil {
		return fmt.Errorf("clearing credentials: %w", err)
	}
	return nil
}
