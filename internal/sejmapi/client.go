// Package sejmapi is the upstream HTTP client for the Polish legal-act
// registry at api.sejm.gov.pl/eli: retries, a circuit breaker, bounded
// concurrency, and cache-integrated JSON/text/byte fetches, plus typed
// helpers layered above the generic request path.
package sejmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/breaker"
	"github.com/sejmkit/gateway/internal/cache"
)

const (
	// DefaultBaseURL is the upstream API root all paths are resolved against.
	DefaultBaseURL = "https://api.sejm.gov.pl/eli"

	userAgent = "sejmkit-gateway/1.0"

	maxResponseSize = 20 * 1024 * 1024

	maxAttempts  = 3
	retryMinWait = 1 * time.Second
	retryMaxWait = 10 * time.Second
)

// BaseURL is the upstream API root all paths are resolved against. It is a
// var rather than a const so the dispatcher can set it from configuration
// and tests can redirect it at an httptest server.
var BaseURL = DefaultBaseURL

// Client wraps *http.Client with retry, a circuit breaker, a concurrency
// semaphore, and a response cache.
type Client struct {
	http    *http.Client
	cache   *cache.Cache
	breaker *breaker.Breaker
	sem     chan struct{}
}

// New builds a Client. Connecting is bounded at 5s, and timeout bounds the
// wait for response headers; reading the response body and writing the
// request have no separate timeout. maxConcurrent bounds in-flight upstream
// calls.
func New(c *cache.Cache, b *breaker.Breaker, timeout time.Duration, maxConcurrent int) *Client {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	dialer := &net.Dialer{Timeout: 5 * time.Second}
	transport := &http.Transport{
		DialContext:           dialer.DialContext,
		ResponseHeaderTimeout: timeout,
		IdleConnTimeout:       10 * time.Second,
	}

	return &Client{
		http:    &http.Client{Transport: transport},
		cache:   c,
		breaker: b,
		sem:     make(chan struct{}, maxConcurrent),
	}
}

func (c *Client) acquire() { c.sem <- struct{}{} }
func (c *Client) release() { <-c.sem }

// request performs one logical GET, including the breaker gate, semaphore,
// and retry loop. accept sets the Accept header.
func (c *Client) request(ctx context.Context, path string, params map[string]string, accept string) ([]byte, error) {
	if !c.breaker.CanExecute() {
		return nil, &apierrors.ApiUnavailableError{
			Message:    "API Sejmu tymczasowo niedostępne (circuit breaker otwarty)",
			StatusCode: 503,
		}
	}

	u, err := buildURL(path, params)
	if err != nil {
		return nil, err
	}

	c.acquire()
	defer c.release()

	var lastErr error
	wait := retryMinWait
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, status, err := c.doOnce(ctx, u, accept)
		if err == nil {
			switch {
			case status == http.StatusOK:
				c.breaker.RecordSuccess()
				return body, nil
			case status == http.StatusNotFound:
				// 404 is not retried and does not count as a breaker failure.
				return nil, &apierrors.ActNotFoundError{Eli: path}
			case status == http.StatusBadGateway || status == http.StatusServiceUnavailable:
				c.breaker.RecordFailure()
				lastErr = &apierrors.ApiUnavailableError{
					Message:    fmt.Sprintf("API temporarily unavailable: %d", status),
					StatusCode: status,
				}
				if attempt == maxAttempts {
					return nil, lastErr
				}
			default:
				return nil, &apierrors.SejmAPIError{
					Message:    fmt.Sprintf("HTTP %d: %s", status, string(body)),
					StatusCode: status,
					URL:        u,
				}
			}
		} else {
			// Transport-level error: treated as a timeout/connection failure.
			lastErr = err
			if attempt == maxAttempts {
				c.breaker.RecordFailure()
				return nil, fmt.Errorf("request to %s timed out or failed: %w", u, err)
			}
		}

		log.Debug().Str("url", u).Int("attempt", attempt).Msg("retrying upstream request")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
		if wait > retryMaxWait {
			wait = retryMaxWait
		}
	}

	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, u string, accept string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func buildURL(path string, params map[string]string) (string, error) {
	base := strings.TrimRight(BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if len(params) == 0 {
		return base, nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range params {
		if v != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// cacheKey produces a stable string from path + params for cache lookups.
func cacheKey(path string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("json:")
	b.WriteString(path)
	b.WriteString(":{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params[k])
	}
	b.WriteString("}")
	return b.String()
}

// GetJSON fetches path with params, decoding the response as JSON into out.
// If cacheTTL > 0, a prior cached response is returned when present, and a
// successful fetch is stored for cacheTTL.
func (c *Client) GetJSON(ctx context.Context, path string, params map[string]string, cacheTTL time.Duration, out any) error {
	var key string
	if cacheTTL > 0 {
		key = cacheKey(path, params)
		if cached, ok := c.cache.Get(key); ok {
			raw, ok := cached.(json.RawMessage)
			if ok {
				return json.Unmarshal(raw, out)
			}
		}
	}

	body, err := c.request(ctx, path, params, "application/json")
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}

	if cacheTTL > 0 {
		c.cache.Set(key, json.RawMessage(body), cacheTTL)
	}
	return nil
}

// GetText fetches path as HTML/plain text. Never cached.
func (c *Client) GetText(ctx context.Context, path string) (string, error) {
	body, err := c.request(ctx, path, nil, "text/html, text/plain, */*")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetBytes fetches path as a binary payload (PDF). Never cached.
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, error) {
	return c.request(ctx, path, nil, "application/pdf, application/octet-stream, */*")
}
