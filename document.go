package sitelens

// Document is a parsed, read-only HTML page.
// Its structure is only accessible to the package that produced it.
type Document interface {
	// URL returns the resolved location of the page, or "" if unknown.
	URL() string

	// HTML returns the serialized document.
	HTML() string
}

// Parser turns raw HTML into a Document.
type Parser interface {
	// Parse parses html. pageURL is the resolved location of the page and
	// may be empty. Returns EPARSE if the input cannot be parsed.
	Parse(html string, pageURL string) (Document, error)
}

// RenderPolicy decides whether a page needs scripted rendering.
type RenderPolicy interface {
	// NeedsRendering reports whether the meaningful content of the
	// static document is likely assembled client-side.
	NeedsRendering(doc Document) bool
}

// FieldExtractor extracts the normalized field record from a document.
// Missing fields are left empty; extraction never fails.
type FieldExtractor interface {
	Extract(doc Document) *FieldRecord
}

// MetadataExtractor extracts page-level metadata from a document.
// Extraction never fails.
type MetadataExtractor interface {
	ExtractMetadata(doc Document) *Metadata
}
