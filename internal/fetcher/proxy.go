package fetcher

import (
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
)

// ProxyRing is a round-robin pool of proxy URLs shared by concurrent requests.
type ProxyRing struct {
	proxies []*url.URL
	next    atomic.Uint64
}

// NewProxyRing parses the proxy list into a ring. Scheme-less entries default
// to http. Returns ErrNoProxies when no entry survives parsing.
func NewProxyRing(proxies []string) (*ProxyRing, error) {
	parsed := make([]*url.URL, 0, len(proxies))

	for _, raw := range proxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if !strings.Contains(raw, "://") {
			raw = "http://" + raw
		}

		proxyURL, err := url.Parse(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, proxyURL)
	}

	if len(parsed) == 0 {
		return nil, ErrNoProxies
	}

	return &ProxyRing{proxies: parsed}, nil
}

// Next returns the ring's next proxy.
func (r *ProxyRing) Next() *url.URL {
	position := r.next.Add(1) - 1
	return r.proxies[position%uint64(len(r.proxies))]
}

// ProxyTransport returns an http transport routing every request through the
// ring. A nil ring yields a transport with direct connections.
func ProxyTransport(ring *ProxyRing) *http.Transport {
	transport := &http.Transport{}
	if ring != nil {
		transport.Proxy = func(*http.Request) (*url.URL, error) {
			return ring.Next(), nil
		}
	}

	return transport
}
