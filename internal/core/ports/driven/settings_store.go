package driven

import "github.com/intramate/intramate-cli/internal/core/domain"

// SettingsStore persists client configuration.
type SettingsStore interface {
	// Load returns the stored settings with defaults applied, or the
	// defaults when nothing has been saved.
	Load() (domain.Settings, error)

	// Save replaces the stored settings.
	Save(settings domain.Settings) error
}
