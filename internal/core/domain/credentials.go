package domain

import "strings"

// Credentials is the pair of third-party API keys gating all remote
// calls. The pair is persisted only after the remote validation
// endpoint accepts it, and always as a whole: partial credential state
// never reaches the store.
type Credentials struct {
	// OpenAIKey is the OpenAI API key.
	OpenAIKey string `json:"openai_key"`

	// TavilyKey is the Tavily web-search API key.
	TavilyKey string `json:"tavily_key"`
}

// Complete reports whether both keys are present.
func (c Credentials) Complete() bool {
	return c.OpenAIKey != "" && c.TavilyKey != ""
}

// Masked returns a display-safe redaction of the pair.
// Masked values are for display only, never for transmission.
func (c Credentials) Masked() Credentials {
	return Credentials{
		OpenAIKey: MaskKey(c.OpenAIKey),
		TavilyKey: MaskKey(c.TavilyKey),
	}
}

// MaskKey redacts an API key for display. Short keys are fully starred;
// longer keys keep a four-character prefix and suffix with the middle
// elided.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + "..." + key[len(key)-4:]
}
