package fetcher_test

import (
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/marketradar-pl/marketradar/internal/fetcher"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const response = "<html><body>hello</body></html>"

func newFetcher(t *testing.T, srv *httptest.Server, options ...fetcher.Option) *fetcher.Fetcher {
	t.Helper()

	logger := zerolog.Nop()
	options = append(
		[]fetcher.Option{fetcher.WithBackoff(time.Millisecond, 2*time.Millisecond)},
		options...,
	)

	return fetcher.NewFetcher(srv.Client(), &logger, options...)
}

func TestUnitFetchPage(t *testing.T) {
	tests := map[string]struct {
		serverHandler http.Handler
		wantBody      string
		wantErr       error
	}{
		"ok html": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header)
				wrt.Header().Add("Content-Type", "text/html")
				_, _ = wrt.Write([]byte(response))
			}),
			wantBody: response,
		},
		"ok gzip": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
				validateHeaders(t, req.Header)
				wrt.Header().Add("Content-Encoding", "gzip")
				compressedWrt := gzip.NewWriter(wrt)
				_, _ = compressedWrt.Write([]byte(response))
				_ = compressedWrt.Close()
			}),
			wantBody: response,
		},
		"bad status error": {
			serverHandler: http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
				wrt.WriteHeader(http.StatusNotFound)
			}),
			wantBody: "",
			wantErr:  fetcher.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(tt.serverHandler)
			t.Cleanup(srv.Close)

			fet := newFetcher(t, srv)
			page, err := fet.FetchPage(context.TODO(), srv.URL+"/szukaj")

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, string(page), "should return correct page body")
			}
		})
	}
}

func TestUnitFetchPageRetriesServerErrors(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) < 3 {
			wrt.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = wrt.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	fet := newFetcher(t, srv, fetcher.WithRetries(3))
	page, err := fet.FetchPage(context.TODO(), srv.URL)

	require.NoError(t, err, "should recover after retriable statuses")
	assert.Equal(t, response, string(page), "should return correct page body")
	assert.Equal(t, int32(3), requests.Load(), "should stop retrying after first success")
}

func TestUnitFetchPageRetriesTooManyRequests(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		if requests.Add(1) == 1 {
			wrt.Header().Set("Retry-After", "0")
			wrt.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = wrt.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	fet := newFetcher(t, srv, fetcher.WithRetries(1))
	page, err := fet.FetchPage(context.TODO(), srv.URL)

	require.NoError(t, err, "should retry after 429")
	assert.Equal(t, response, string(page), "should return correct page body")
}

func TestUnitFetchPageStopsOnNonRetriableStatus(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		wrt.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	fet := newFetcher(t, srv, fetcher.WithRetries(5))
	_, err := fet.FetchPage(context.TODO(), srv.URL)

	require.ErrorIs(t, err, fetcher.ErrStatusNotOK, "should return status error")
	assert.Equal(t, int32(1), requests.Load(), "should not retry non-retriable statuses")
}

func TestUnitFetchPageGivesUpAfterRetries(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		wrt.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	fet := newFetcher(t, srv, fetcher.WithRetries(2))
	_, err := fet.FetchPage(context.TODO(), srv.URL)

	require.ErrorIs(t, err, fetcher.ErrStatusNotOK, "should surface last status error")
	assert.Equal(t, int32(3), requests.Load(), "should use all attempts")
}

func TestUnitFetchPageRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		_, _ = wrt.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fet := newFetcher(t, srv)
	_, err := fet.FetchPage(ctx, srv.URL)

	require.ErrorIs(t, err, context.Canceled, "should stop on canceled context")
}

func TestUnitProxyRing(t *testing.T) {
	ring, err := fetcher.NewProxyRing([]string{"10.0.0.1:8080", "", "http://10.0.0.2:8080"})
	require.NoError(t, err, "should build ring from usable entries")

	hosts := lo.Map(make([]struct{}, 4), func(_ struct{}, _ int) string {
		return ring.Next().Host
	})

	assert.Equal(
		t,
		[]string{"10.0.0.1:8080", "10.0.0.2:8080", "10.0.0.1:8080", "10.0.0.2:8080"},
		hosts,
		"should rotate proxies round robin",
	)

	_, err = fetcher.NewProxyRing(nil)
	require.ErrorIs(t, err, fetcher.ErrNoProxies, "should reject empty proxy list")
}

// validateHeaders checks the browser identity headers sent with every fetch.
func validateHeaders(t *testing.T, headers http.Header) {
	t.Helper()

	assert.Contains(t, fetcher.DefaultUserAgents, headers.Get("User-Agent"), "should send a pooled user agent")
	assert.Contains(t, headers.Get("Accept-Language"), "pl-PL", "should prefer polish content")
	assert.Equal(t, "gzip", headers.Get("Accept-Encoding"), "should advertise gzip support")
}
