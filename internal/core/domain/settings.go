package domain

// Default settings values.
const (
	// DefaultServerURL is the local development address of the
	// IntraMate backend.
	DefaultServerURL = "http://localhost:8000"

	// DefaultLanguage is the answer language used when none is given.
	DefaultLanguage = "English"

	// DefaultRequestsPerSecond is the client-side throttle applied to
	// remote calls.
	DefaultRequestsPerSecond = 4.0
)

// Settings holds user-tunable client configuration.
type Settings struct {
	// ServerURL is the base URL of the remote service.
	ServerURL string `toml:"server_url"`

	// Language is the default answer language for chat and summaries.
	Language string `toml:"language"`

	// WatchDir is the directory observed by `upload --watch`.
	// Empty disables watching.
	WatchDir string `toml:"watch_dir"`

	// RequestsPerSecond throttles outgoing remote calls.
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// DefaultSettings returns the settings used before any are saved.
func DefaultSettings() Settings {
	return Settings{
		ServerURL:         DefaultServerURL,
		Language:          DefaultLanguage,
		RequestsPerSecond: DefaultRequestsPerSecond,
	}
}

// Normalize fills zero values with defaults.
func (s Settings) Normalize() Settings {
	if s.ServerURL == "" {
		s.ServerURL = DefaultServerURL
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.RequestsPerSecond <= 0 {
		s.RequestsPerSecond = DefaultRequestsPerSecond
	}
	return s
}
