package domain

// Document is the server-side indexed form of an uploaded file.
// The client only ever holds a read-only cached copy; the remote
// service owns the authoritative list and the cache is replaced
// wholesale on every refresh.
type Document struct {
	// Name is the human-readable file name.
	Name string

	// Path is the unique server-side identifier.
	Path string

	// ChunkCount is the number of indexed chunks.
	ChunkCount int

	// Previews holds up to a few short excerpts of the indexed content.
	Previews []string
}
