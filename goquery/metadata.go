package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens"
)

// Ensure MetadataExtractor implements sitelens.MetadataExtractor at compile time.
var _ sitelens.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads the title, description and Open Graph tags of a page.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata returns the metadata of doc.
// When an Open Graph property appears more than once, the last one wins.
func (e *MetadataExtractor) ExtractMetadata(doc sitelens.Document) *sitelens.Metadata {
	root := selection(doc)

	og := make(map[string]string)
	root.Find(`meta[property^="og:"]`).Each(func(_ int, s *goquery.Selection) {
		property, _ := s.Attr("property")
		content, _ := s.Attr("content")
		og[strings.TrimPrefix(property, "og:")] = content
	})

	return &sitelens.Metadata{
		Title:       pageTitle(root),
		Description: metaDescription(root),
		OpenGraph:   og,
	}
}

// pageTitle returns the trimmed text of the first <title> element.
func pageTitle(root *goquery.Selection) string {
	return strings.TrimSpace(root.Find("title").First().Text())
}

// metaDescription returns the content of the first description meta tag.
func metaDescription(root *goquery.Selection) string {
	content, _ := root.Find(`meta[name="description"]`).First().Attr("content")
	return content
}
