// Package scrape orchestrates retrieval and extraction: it fetches a page
// statically, decides whether a browser render is needed, and turns the
// final document into a FetchResult.
package scrape

import (
	"context"
	"errors"
	"sync"

	"github.com/fwojciec/sitelens"
)

// Ensure Scraper implements sitelens.Scraper at compile time.
var _ sitelens.Scraper = (*Scraper)(nil)

// Scraper fetches pages and extracts their fields and metadata.
//
// Every collaborator must be set except Renderer, which is only needed
// when Policy asks for a render. Scraper is safe for concurrent use;
// renders are serialized.
type Scraper struct {
	Fetcher  sitelens.Fetcher
	Renderer sitelens.Renderer
	Parser   sitelens.Parser
	Policy   sitelens.RenderPolicy
	Fields   sitelens.FieldExtractor
	Metadata sitelens.MetadataExtractor

	renderMu  sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// Scrape retrieves url and extracts a FieldRecord and Metadata from it.
// Any error or panic along the way is reported as a failed result.
func (s *Scraper) Scrape(ctx context.Context, url string) (result *sitelens.FetchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = sitelens.Failure(sitelens.Errorf(sitelens.EINTERNAL, "unexpected error scraping %s: %v", url, r))
		}
	}()

	doc, err := s.document(ctx, url)
	if err != nil {
		return sitelens.Failure(err)
	}

	return sitelens.Success(s.Fields.Extract(doc), s.Metadata.ExtractMetadata(doc))
}

// document returns the document to extract from: the static page, or the
// rendered page when the policy asks for it. A failed render is not
// retried statically.
func (s *Scraper) document(ctx context.Context, url string) (sitelens.Document, error) {
	html, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, retrievalError(err, url)
	}

	doc, err := s.Parser.Parse(html, "")
	if err != nil {
		return nil, err
	}

	if !s.Policy.NeedsRendering(doc) {
		return doc, nil
	}

	page, err := s.render(ctx, url)
	if err != nil {
		return nil, err
	}

	return s.Parser.Parse(page.HTML, page.URL)
}

func (s *Scraper) render(ctx context.Context, url string) (*sitelens.RenderedPage, error) {
	if s.Renderer == nil {
		return nil, sitelens.Errorf(sitelens.EINTERNAL, "page %s needs rendering but no renderer is configured", url)
	}

	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	page, err := s.Renderer.Render(ctx, url)
	if err != nil {
		return nil, retrievalError(err, url)
	}
	if page == nil {
		return nil, sitelens.Errorf(sitelens.EINTERNAL, "renderer returned no page for %s", url)
	}
	return page, nil
}

// Close releases the renderer and the fetcher. Only the first call does
// any work; later calls return the first result.
func (s *Scraper) Close() error {
	s.closeOnce.Do(func() {
		var errs []error
		if s.Renderer != nil {
			errs = append(errs, s.Renderer.Close())
		}
		if s.Fetcher != nil {
			errs = append(errs, s.Fetcher.Close())
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}

// retrievalError gives errors without an application code the retrieval
// code, so callers can tell retrieval failures apart from bugs.
func retrievalError(err error, url string) error {
	var e *sitelens.Error
	if errors.As(err, &e) {
		return err
	}
	return sitelens.WrapError(sitelens.ERETRIEVAL, err, "retrieving %s", url)
}
