package fetcher

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUserAgents is the browser pool used for request randomization when
// no custom pool is configured.
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.1.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:89.0) Gecko/20100101 Firefox/89.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Edge/91.0.864.59",
}

const (
	defaultMaxRetries = 3
	defaultBaseDelay  = 300 * time.Millisecond
	defaultMaxDelay   = 8 * time.Second

	// maxBodyBytes caps how much of a page is read; marketplace pages past
	// this size carry no listings worth parsing.
	maxBodyBytes = 10 << 20
)

// Fetcher performs retriable GET requests with a rotating browser identity.
type Fetcher struct {
	client     *http.Client
	logger     *zerolog.Logger
	userAgents []string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithUserAgents replaces the default User-Agent pool.
func WithUserAgents(userAgents []string) Option {
	return func(f *Fetcher) {
		if len(userAgents) > 0 {
			f.userAgents = userAgents
		}
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(retries int) Option {
	return func(f *Fetcher) {
		if retries >= 0 {
			f.maxRetries = retries
		}
	}
}

// WithBackoff sets the base and maximum delay between retries.
func WithBackoff(base, max time.Duration) Option {
	return func(f *Fetcher) {
		if base > 0 {
			f.baseDelay = base
		}
		if max > 0 {
			f.maxDelay = max
		}
	}
}

// NewFetcher returns new Fetcher using the provided http client.
func NewFetcher(client *http.Client, logger *zerolog.Logger, options ...Option) *Fetcher {
	fetcher := Fetcher{
		client:     client,
		logger:     logger,
		userAgents: DefaultUserAgents,
		maxRetries: defaultMaxRetries,
		baseDelay:  defaultBaseDelay,
		maxDelay:   defaultMaxDelay,
	}

	for _, option := range options {
		option(&fetcher)
	}

	return &fetcher
}

// FetchPage fetches the page at url and returns its body. Network failures
// and retriable statuses (429, 5xx) are retried with exponential backoff and
// jitter; a Retry-After header on 429 responses is honored when it fits
// within the maximum delay.
func (f *Fetcher) FetchPage(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, retriable, err := f.fetchOnce(ctx, url)
		if err == nil {
			return page, nil
		}
		if !retriable {
			return nil, err
		}
		lastErr = err

		if attempt == f.maxRetries {
			break
		}

		f.logger.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt+1).
			Int("max_attempts", f.maxRetries+1).
			Msg("retrying page fetch")

		if err := sleepCtx(ctx, f.retryDelay(attempt)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

// fetchOnce performs a single GET attempt. The retriable result tells the
// retry loop whether the failure is worth another attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (page []byte, retriable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("can't build http request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgents[rand.Intn(len(f.userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pl-PL,pl;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, shouldRetryError(err), fmt.Errorf("can't get http response: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

		if !shouldRetryStatus(resp.StatusCode) {
			return nil, false, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
		}

		if wait := retryAfterDelay(resp); wait > 0 && wait <= f.maxDelay {
			if err := sleepCtx(ctx, wait); err != nil {
				return nil, false, err
			}
		}

		return nil, true, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	page, err = readBody(resp)
	if err != nil {
		return nil, true, fmt.Errorf("can't read response body: %w", err)
	}

	return page, false, nil
}

// readBody reads the response body, decompressing it when the server kept
// the gzip encoding we advertised.
func readBody(resp *http.Response) ([]byte, error) {
	var body io.Reader = resp.Body

	if resp.Header.Get("Content-Encoding") == "gzip" {
		decompressed, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("can't decompress response: %w", err)
		}
		defer func() {
			_ = decompressed.Close()
		}()
		body = decompressed
	}

	return io.ReadAll(io.LimitReader(body, maxBodyBytes))
}

// retryDelay returns the backoff delay for the given attempt: exponential
// growth capped at maxDelay, with half of the delay randomized as jitter.
func (f *Fetcher) retryDelay(attempt int) time.Duration {
	delay := f.baseDelay << uint(attempt)
	if delay > f.maxDelay || delay <= 0 {
		delay = f.maxDelay
	}

	half := delay / 2

	return half + time.Duration(rand.Int63n(int64(half)+1))
}

func shouldRetryStatus(code int) bool {
	return code == http.StatusTooManyRequests || (code >= 500 && code <= 599)
}

func shouldRetryError(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}

// retryAfterDelay reads the Retry-After header as a number of seconds.
func retryAfterDelay(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
