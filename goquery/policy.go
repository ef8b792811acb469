package goquery

import (
	"strings"

	"github.com/fwojciec/sitelens"
)

// DefaultMaxExternalScripts is the number of <script src> elements a page
// may carry before it is assumed to render client-side.
const DefaultMaxExternalScripts = 5

// DefaultFrameworkMarkers are substrings of the lowercase document that
// indicate a client-side framework.
var DefaultFrameworkMarkers = []string{"react", "angular", "vue"}

// Ensure RenderPolicy implements sitelens.RenderPolicy at compile time.
var _ sitelens.RenderPolicy = (*RenderPolicy)(nil)

// RenderPolicy decides whether a page needs scripted rendering from its
// static markup alone. False positives are cheap (an unneeded browser
// load); false negatives only reduce extraction quality.
type RenderPolicy struct {
	MaxExternalScripts int
	FrameworkMarkers   []string
}

// NewRenderPolicy creates a RenderPolicy with the default threshold and markers.
func NewRenderPolicy() *RenderPolicy {
	return &RenderPolicy{
		MaxExternalScripts: DefaultMaxExternalScripts,
		FrameworkMarkers:   DefaultFrameworkMarkers,
	}
}

// NeedsRendering reports whether doc has more external scripts than the
// threshold or mentions any framework marker anywhere in its markup.
func (p *RenderPolicy) NeedsRendering(doc sitelens.Document) bool {
	if selection(doc).Find("script[src]").Length() > p.MaxExternalScripts {
		return true
	}

	if doc == nil {
		return false
	}
	text := strings.ToLower(doc.HTML())
	for _, marker := range p.FrameworkMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
