package mock

import "github.com/fwojciec/sitelens"

var (
	_ sitelens.Document          = (*Document)(nil)
	_ sitelens.Parser            = (*Parser)(nil)
	_ sitelens.RenderPolicy      = (*RenderPolicy)(nil)
	_ sitelens.FieldExtractor    = (*FieldExtractor)(nil)
	_ sitelens.MetadataExtractor = (*MetadataExtractor)(nil)
)

// Document is a mock implementation of sitelens.Document.
type Document struct {
	URLFn  func() string
	HTMLFn func() string
}

func (d *Document) URL() string {
	return d.URLFn()
}

func (d *Document) HTML() string {
	return d.HTMLFn()
}

// Parser is a mock implementation of sitelens.Parser.
type Parser struct {
	ParseFn func(html, pageURL string) (sitelens.Document, error)
}

func (p *Parser) Parse(html, pageURL string) (sitelens.Document, error) {
	return p.ParseFn(html, pageURL)
}

// RenderPolicy is a mock implementation of sitelens.RenderPolicy.
type RenderPolicy struct {
	NeedsRenderingFn func(doc sitelens.Document) bool
}

func (p *RenderPolicy) NeedsRendering(doc sitelens.Document) bool {
	return p.NeedsRenderingFn(doc)
}

// FieldExtractor is a mock implementation of sitelens.FieldExtractor.
type FieldExtractor struct {
	ExtractFn func(doc sitelens.Document) *sitelens.FieldRecord
}

func (e *FieldExtractor) Extract(doc sitelens.Document) *sitelens.FieldRecord {
	return e.ExtractFn(doc)
}

// MetadataExtractor is a mock implementation of sitelens.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(doc sitelens.Document) *sitelens.Metadata
}

func (e *MetadataExtractor) ExtractMetadata(doc sitelens.Document) *sitelens.Metadata {
	return e.ExtractMetadataFn(doc)
}
