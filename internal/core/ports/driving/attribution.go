package driving

// AttributionService tracks which transcript messages have their
// source panel expanded. Expansion is per message and purely a view
// concern; it is never persisted.
type AttributionService interface {
	// Toggle flips the expansion state for the message at index and
	// returns the new state.
	Toggle(index int) bool

	// Expanded reports whether the panel at index is expanded.
	Expanded(index int) bool

	// Reset collapses every panel.
	Reset()
}
