// Package goquery implements document parsing, the render policy, and
// field and metadata extraction on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens"
	"golang.org/x/net/html"
)

// Ensure types implement their interfaces at compile time.
var (
	_ sitelens.Parser   = (*Parser)(nil)
	_ sitelens.Document = (*Document)(nil)
)

// Document is a parsed HTML page backed by a goquery document.
type Document struct {
	doc *goquery.Document
	url string
}

// URL returns the resolved location of the page, or "" if unknown.
func (d *Document) URL() string {
	return d.url
}

// HTML returns the serialized document.
func (d *Document) HTML() string {
	s, err := d.doc.Html()
	if err != nil {
		return ""
	}
	return s
}

// Parser parses raw HTML into Documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses rawHTML. The HTML5 parser recovers from almost any input,
// so EPARSE is only returned when reading the input itself fails.
func (p *Parser) Parse(rawHTML string, pageURL string) (sitelens.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, sitelens.WrapError(sitelens.EPARSE, err, "failed to parse HTML")
	}
	return &Document{doc: doc, url: pageURL}, nil
}

// selection returns the root selection of doc. Documents produced by other
// parsers are re-parsed from their serialized HTML; if that fails an empty
// document is returned so that extraction never fails.
func selection(doc sitelens.Document) *goquery.Selection {
	if d, ok := doc.(*Document); ok {
		return d.doc.Selection
	}
	if doc != nil {
		if d, err := goquery.NewDocumentFromReader(strings.NewReader(doc.HTML())); err == nil {
			return d.Selection
		}
	}
	return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode}).Selection
}
