package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/sitelens"
	"golang.org/x/time/rate"
)

var _ sitelens.HostLimiter = (*HostLimiter)(nil)

// HostLimiter rate limits page requests per site. The site of a URL is its
// lowercase hostname without port and without a leading "www.", so
// https://www.acme.example/about and http://acme.example:8080/ share a
// budget. URLs that cannot be parsed share a single budget.
type HostLimiter struct {
	limit rate.Limit

	mu    sync.Mutex
	sites map[string]*rate.Limiter
}

// NewHostLimiter returns a HostLimiter allowing rps requests per second to
// each site with no bursting. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		limit: limit,
		sites: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to rawURL is allowed.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	return l.limiter(SiteKey(rawURL)).Wait(ctx)
}

// Sites returns the number of sites seen so far.
func (l *HostLimiter) Sites() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sites)
}

func (l *HostLimiter) limiter(site string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.sites[site]
	if !ok {
		lim = rate.NewLimiter(l.limit, 1)
		l.sites[site] = lim
	}
	return lim
}

// SiteKey returns the rate limiting key for rawURL, or "" when it has no
// host.
func SiteKey(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
