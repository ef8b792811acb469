package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitelens"
)

// Ensure FieldExtractor implements sitelens.FieldExtractor at compile time.
var _ sitelens.FieldExtractor = (*FieldExtractor)(nil)

// FieldRules lists the candidate matchers for each matcher-driven field.
// Earlier matchers take precedence.
type FieldRules struct {
	Name           []Matcher
	About          []Matcher
	Industry       []Matcher
	ContactAddress []Matcher
	ContactPhone   []Matcher
	Email          []Matcher
}

// DefaultFieldRules returns the rules used by NewFieldExtractor.
//
// The phone rule is a coarse heuristic: the first text or comment anywhere
// in the document that contains a digit. It regularly captures dates, prices or
// script text and should be treated as low confidence.
func DefaultFieldRules() FieldRules {
	return FieldRules{
		Name: []Matcher{
			Text("h1"),
			Text(".profile-name"),
			Text(".name"),
			Text(`[itemprop="name"]`),
		},
		About: []Matcher{
			Text(".about"),
			Text("#about"),
			Text(`[itemprop="description"]`),
			Text(".bio"),
			Text(".description"),
		},
		Industry: []Matcher{
			Text(".industry"),
			Text(`[itemprop="industry"]`),
			Text(".business-category"),
		},
		ContactAddress: []Matcher{
			Text("address"),
		},
		ContactPhone: []Matcher{
			FirstTextNode(containsDigit),
		},
		Email: []Matcher{
			AttrPrefix{Selector: `a[href^="mailto:"]`, Attr: "href", Prefix: "mailto:"},
		},
	}
}

// FieldExtractor builds a sitelens.FieldRecord from a document.
type FieldExtractor struct {
	Rules FieldRules
}

// NewFieldExtractor creates a FieldExtractor with the default rules.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{
		Rules: DefaultFieldRules(),
	}
}

// Extract returns the field record for doc. Fields without a match are empty.
func (e *FieldExtractor) Extract(doc sitelens.Document) *sitelens.FieldRecord {
	root := selection(doc)

	var pageURL string
	if doc != nil {
		pageURL = doc.URL()
	}

	return &sitelens.FieldRecord{
		Title:          pageTitle(root),
		Description:    metaDescription(root),
		Name:           firstMatch(root, e.Rules.Name),
		About:          firstMatch(root, e.Rules.About),
		Source:         ClassifySource(pageURL),
		Industry:       firstMatch(root, e.Rules.Industry),
		ContactPhone:   firstMatch(root, e.Rules.ContactPhone),
		ContactAddress: firstMatch(root, e.Rules.ContactAddress),
		Email:          firstMatch(root, e.Rules.Email),
		PageType:       ClassifyPage(root),
	}
}

// ClassifySource labels a page by the domain of its URL. Pages without a
// known URL are labeled as a plain website.
func ClassifySource(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return sitelens.SourceWebsite
	}

	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "linkedin"):
		return sitelens.SourceLinkedIn
	case strings.Contains(host, "facebook"):
		return sitelens.SourceFacebook
	case strings.Contains(host, "twitter"):
		return sitelens.SourceTwitter
	}
	return sitelens.SourceWebsite
}

// ClassifyPage labels a page by the first structural element present:
// article, then form controls, then tables.
func ClassifyPage(root *goquery.Selection) string {
	switch {
	case root.Find("article").Length() > 0:
		return sitelens.PageTypeArticle
	case root.Find("form, input").Length() > 0:
		return sitelens.PageTypeForm
	case root.Find("table").Length() > 0:
		return sitelens.PageTypeData
	}
	return sitelens.PageTypeGeneral
}
