// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP probe used for external link checking.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/pdiddy/notemill/pkg/types"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 2 * time.Second

const (
	defaultMaxRetries = 3
	defaultTimeout    = 10 * time.Second
	defaultUserAgent  = "notemill/0.1"
)

// Prober checks whether external link targets resolve.
type Prober struct {
	client     *http.Client
	userAgent  string
	maxRetries int
}

// NewProber builds a Prober from HTTP settings, applying defaults for
// zero values.
func NewProber(cfg types.HTTPConfig, maxRetries int) *Prober {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Prober{
		client:     &http.Client{Timeout: timeout},
		userAgent:  ua,
		maxRetries: maxRetries,
	}
}

// Probe issues a HEAD request for url and returns the final status code.
// Servers that reject HEAD with 405 are re-probed with GET. HTTP 429 is
// retried with exponential backoff starting at RetryBaseDelay; after
// exhausting retries the last 429 status is returned. The response body is
// always drained and closed.
func (p *Prober) Probe(ctx context.Context, url string) (int, error) {
	status, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return 0, err
	}
	if status == http.StatusMethodNotAllowed {
		return p.do(ctx, http.MethodGet, url)
	}
	return status, nil
}

func (p *Prober) do(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	for attempt := 0; ; attempt++ {
		resp, err := p.client.Do(req.Clone(ctx))
		if err != nil {
			return 0, err
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= p.maxRetries {
			return resp.StatusCode, nil
		}

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
