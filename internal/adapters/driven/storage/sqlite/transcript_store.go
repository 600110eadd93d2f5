package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/intramate/intramate-cli/internal/core/domain"
	"github.com/intramate/intramate-cli/internal/core/ports/driven"
)

// transcriptStore implements driven.TranscriptStore.
// The transcript is stored as one JSON document in a single row, so
// Save is a single atomic upsert and a reload never observes a partial
// transcript.
type transcriptStore struct {
	store *Store
}

var _ driven.TranscriptStore = (*transcriptStore)(nil)

// Save replaces the stored transcript.
func (s *transcriptStore) Save(ctx context.Context, messages []domain.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshalling transcript: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO transcript (id, messages, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			messages = excluded.messages,
			updated_at = excluded.updated_at
	`, string(payload))

	if err != nil {
		return fmt.Errorf("saving transcript: %w", err)
	}
	return nil
}

// Load returns the stored transcript, or an empty slice when none has
// been saved.
func (s *transcriptStore) Load(ctx context.Context) ([]domain.Message, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT messages FROM transcript WHERE id = 1")

	var payload string
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning transcript: %w", err)
	}

	var messages []domain.Message
	if err := json.Unmarshal([]byte(payload), &messages); err != nil {
		return nil, fmt.Errorf("unmarshalling transcript: %w", err)
	}
	return messages, nil
}

// Clear removes the stored transcript.
func (s *transcriptStore) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM transcript WHERE id = 1")
	if err != nil {
		return fmt.Errorf("clearing transcript: %w", err)
	}
	return nil
}
