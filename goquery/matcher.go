package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Matcher finds a candidate value for a field within a document.
// Match returns false when the matcher found nothing usable.
type Matcher interface {
	Match(root *goquery.Selection) (string, bool)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(root *goquery.Selection) (string, bool)

// Match calls f(root).
func (f MatcherFunc) Match(root *goquery.Selection) (string, bool) {
	return f(root)
}

// Text matches the trimmed text of the first element matching a CSS selector.
type Text string

// Match implements Matcher.
func (t Text) Match(root *goquery.Selection) (string, bool) {
	s := root.Find(string(t)).First()
	if s.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(s.Text())
	return text, text != ""
}

// AttrPrefix matches the value of Attr on the first element matching
// Selector, with Prefix removed.
type AttrPrefix struct {
	Selector string
	Attr     string
	Prefix   string
}

// Match implements Matcher.
func (a AttrPrefix) Match(root *goquery.Selection) (string, bool) {
	v, ok := root.Find(a.Selector).First().Attr(a.Attr)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(strings.TrimPrefix(v, a.Prefix))
	return v, v != ""
}

// FirstTextNode matches the first text or comment node, in document order,
// whose content satisfies pred. The value is the trimmed node text.
func FirstTextNode(pred func(string) bool) Matcher {
	return MatcherFunc(func(root *goquery.Selection) (string, bool) {
		for _, n := range root.Nodes {
			if text, ok := firstTextNode(n, pred); ok {
				return text, true
			}
		}
		return "", false
	})
}

func firstTextNode(n *html.Node, pred func(string) bool) (string, bool) {
	if (n.Type == html.TextNode || n.Type == html.CommentNode) && pred(n.Data) {
		if text := strings.TrimSpace(n.Data); text != "" {
			return text, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text, ok := firstTextNode(c, pred); ok {
			return text, true
		}
	}
	return "", false
}

// containsDigit reports whether s contains a decimal digit.
func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// firstMatch evaluates matchers in order and returns the first value found.
func firstMatch(root *goquery.Selection, matchers []Matcher) string {
	for _, m := range matchers {
		if v, ok := m.Match(root); ok {
			return v
		}
	}
	return ""
}
