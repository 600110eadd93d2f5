package domain

// SourceType tags which variant of the Sources union is populated.
type SourceType string

const (
	// SourceDocuments means the answer was grounded in uploaded documents.
	SourceDocuments SourceType = "documents"

	// SourceWeb means the answer fell back to a web lookup.
	SourceWeb SourceType = "web"
)

// DocumentSource attributes part of an answer to an indexed document.
type DocumentSource struct {
	// Source is the document path on the server.
	Source string `json:"source"`

	// Preview is a short excerpt of the matched chunk.
	Preview string `json:"preview"`
}

// WebReference attributes part of an answer to a web page.
type WebReference struct {
	// URL is the page address.
	URL string `json:"url"`

	// Title is the page title, when the lookup provided one.
	Title string `json:"title,omitempty"`
}

// Sources is a tagged union of the two attribution shapes the remote
// service produces. Exactly one variant is populated; Type says which.
// The wire format carries both arrays, so NormalizeSources must be used
// to build a valid instance from a response.
type Sources struct {
	Type      SourceType       `json:"type"`
	Documents []DocumentSource `json:"documents,omitempty"`
	Web       []WebReference   `json:"web,omitempty"`
}

// NewDocumentSources builds a document-grounded Sources value.
func NewDocumentSources(docs []DocumentSource) *Sources {
	return &Sources{Type: SourceDocuments, Documents: docs}
}

// NewWebSources builds a web-grounded Sources value.
func NewWebSources(refs []WebReference) *Sources {
	return &Sources{Type: SourceWeb, Web: refs}
}

// NormalizeSources maps the wire shape (a tag plus two parallel arrays)
// onto the tagged union. Payloads where both arrays are populated, or
// where the populated array contradicts the tag, are rejected with
// ErrMalformedSources. A missing tag is inferred from whichever array
// is non-empty.
func NormalizeSources(tag string, docs []DocumentSource, web []WebReference) (*Sources, error) {
	if len(docs) > 0 && len(web) > 0 {
		return nil, ErrMalformedSources
	}

	switch SourceType(tag) {
	case SourceDocuments:
		if len(web) > 0 {
			return nil, ErrMalformedSources
		}
		return NewDocumentSources(docs), nil
	case SourceWeb:
		if len(docs) > 0 {
			return nil, ErrMalformedSources
		}
		return NewWebSources(web), nil
	}

	// No usable tag: infer from the populated variant.
	if len(docs) > 0 {
		return NewDocumentSources(docs), nil
	}
	if len(web) > 0 {
		return NewWebSources(web), nil
	}
	return nil, ErrMalformedSources
}

// Validate checks the tag/payload consistency invariant.
func (s *Sources) Validate() error {
	if len(s.Documents) > 0 && len(s.Web) > 0 {
		return ErrMalformedSources
	}
	switch s.Type {
	case SourceDocuments:
		if len(s.Web) > 0 {
			return ErrMalformedSources
		}
	case SourceWeb:
		if len(s.Documents) > 0 {
			return ErrMalformedSources
		}
	default:
		return ErrMalformedSources
	}
	return nil
}

// Count returns the number of references in the populated variant.
func (s *Sources) Count() int {
	if s.Type == SourceWeb {
		return len(s.Web)
	}
	return len(s.Documents)
}
