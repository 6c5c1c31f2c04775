package edgegrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apierrors "github.com/acedergren/alecs-mcp-server-go/internal/errors"
	"github.com/acedergren/alecs-mcp-server-go/internal/infra"
	"github.com/acedergren/alecs-mcp-server-go/metrics"
	"github.com/acedergren/alecs-mcp-server-go/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL for cached responses
	DefaultCacheTTL = 5 * time.Minute

	// MaxConcurrentRequests limits parallel API calls
	MaxConcurrentRequests = 5

	// DefaultMaxRetry attempts per request
	DefaultMaxRetry = 3

	userAgent = "alecs-mcp-server-go/1.0 (github.com/acedergren/alecs-mcp-server-go)"
)

// Session provides shared HTTP infrastructure for all Akamai API clients:
// EdgeGrid signing, caching, request deduplication, circuit breaking, and a
// concurrency cap. One Session is shared across papi/dns/cps/netlist clients
// so the circuit breaker sees the whole account's traffic.
type Session struct {
	HTTPClient     *http.Client
	Logger         *slog.Logger
	Cache          *infra.Cache
	Dedup          *infra.RequestDeduplicator
	CircuitBreaker *infra.CircuitBreaker
	Semaphore      chan struct{}

	config  Config
	signer  *Signer
	baseURL string
}

// SessionOption configures the Session
type SessionOption func(*Session)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) SessionOption {
	return func(s *Session) {
		s.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		s.Logger = l
	}
}

// WithCache sets a custom cache
func WithCache(c *infra.Cache) SessionOption {
	return func(s *Session) {
		s.Cache = c
	}
}

// WithBaseURL overrides the scheme and host, e.g. an httptest server URL.
func WithBaseURL(baseURL string) SessionOption {
	return func(s *Session) {
		s.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewSession creates a session for the given EdgeGrid credentials.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		HTTPClient:     newHTTPClient(DefaultTimeout),
		Logger:         slog.Default(),
		Cache:          infra.NewCache(1000),
		Dedup:          infra.NewRequestDeduplicator(),
		CircuitBreaker: infra.NewCircuitBreaker(),
		Semaphore:      make(chan struct{}, MaxConcurrentRequests),
		config:         cfg,
		signer:         NewSigner(cfg),
		baseURL:        "https://" + cfg.Host,
	}

	s.Cache.OnEvict = func(n int) {
		metrics.CacheEvictions.Add(float64(n))
		metrics.SetCacheSize(s.Cache.Size())
	}
	s.Cache.OnAccess = metrics.RecordCacheAccess

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Config returns the credential configuration backing this session.
func (s *Session) Config() Config {
	return s.config
}

// Close releases resources held by the session
func (s *Session) Close() {
	if s.Cache != nil {
		s.Cache.Close()
	}
}

// AcquireSlot blocks until a request slot is available or context is canceled
func (s *Session) AcquireSlot(ctx context.Context) error {
	select {
	case s.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for rate limiter: %w", ctx.Err())
	}
}

// ReleaseSlot releases a request slot
func (s *Session) ReleaseSlot() {
	<-s.Semaphore
}

// checkCircuitBreaker returns nil if requests are allowed, or an error if the circuit is open
func (s *Session) checkCircuitBreaker() error {
	if !s.CircuitBreaker.Allow() {
		stats := s.CircuitBreaker.Stats()
		return &infra.ErrCircuitOpen{
			State:    stats.State,
			RetryAt:  stats.LastFailure.Add(30 * time.Second),
			Failures: stats.ConsecutiveFails,
		}
	}
	return nil
}

// Request describes a single control-plane API call.
type Request struct {
	Method  string
	Path    string            // e.g. /papi/v1/properties
	Query   url.Values        // optional
	Body    interface{}       // marshaled as JSON when non-nil
	Headers map[string]string // extra headers (PAPI-Use-Prefixes etc.)

	// Service and Operation label the API latency metrics
	// ("papi"/"list-properties", "dns"/"submit-changelist", ...).
	Service   string
	Operation string

	MaxRetry int // defaults to DefaultMaxRetry
}

// Do performs a signed request with circuit breaking, rate limiting, and
// retries. Each attempt is re-signed because EdgeGrid signatures embed the
// timestamp. Returns the response body and status code on success; 4xx
// responses are returned to the caller, not retried.
func (s *Session) Do(ctx context.Context, req Request) ([]byte, int, error) {
	ctx, span := tracing.StartSpan(ctx, "akamai.api."+req.Service)
	defer span.End()
	tracing.AddAPIAttributes(span, req.Service, req.Operation)

	if err := s.checkCircuitBreaker(); err != nil {
		return nil, 0, err
	}

	if err := s.AcquireSlot(ctx); err != nil {
		return nil, 0, err
	}
	defer s.ReleaseSlot()

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	reqURL := s.buildURL(req)

	maxRetry := req.MaxRetry
	if maxRetry <= 0 {
		maxRetry = DefaultMaxRetry
	}

	start := time.Now()
	defer func() {
		metrics.AkamaiAPILatency.WithLabelValues(req.Service, req.Operation).Observe(time.Since(start).Seconds())
	}()

	var lastErr error
	for attempt := 0; attempt < maxRetry; attempt++ {
		if attempt > 0 {
			metrics.AkamaiAPIRetries.WithLabelValues(req.Service, req.Operation).Inc()
			// Exponential backoff
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("context canceled during backoff: %w", ctx.Err())
			}
		}

		httpReq, err := s.newSignedRequest(ctx, req.Method, reqURL, req.Headers, bodyBytes)
		if err != nil {
			return nil, 0, err
		}

		resp, err := s.HTTPClient.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			s.Logger.Warn("API request failed, retrying",
				"attempt", attempt+1,
				"method", req.Method,
				"path", req.Path,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		// Handle rate limiting with Retry-After header
		if resp.StatusCode == http.StatusTooManyRequests {
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
					select {
					case <-time.After(time.Duration(seconds) * time.Second):
					case <-ctx.Done():
						return nil, 0, ctx.Err()
					}
					continue
				}
			}
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		// Server errors (5xx) should be retried
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			continue
		}

		s.recordOutcome(req, resp.StatusCode)
		return body, resp.StatusCode, nil
	}

	s.CircuitBreaker.RecordFailure()
	metrics.AkamaiAPIRequestsTotal.WithLabelValues(req.Service, req.Operation, "error").Inc()
	return nil, 0, lastErr
}

// DoJSON performs a request and decodes a 2xx response into out. Non-2xx
// responses become *errors.APIError so callers can map 404s to typed
// not-found errors per resource.
func (s *Session) DoJSON(ctx context.Context, req Request, out interface{}) error {
	body, statusCode, err := s.Do(ctx, req)
	if err != nil {
		return err
	}

	if statusCode < 200 || statusCode >= 300 {
		return apierrors.ParseAPIError(statusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// newSignedRequest builds and signs one attempt.
func (s *Session) newSignedRequest(ctx context.Context, method, reqURL string, headers map[string]string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	s.signer.Sign(httpReq, body)
	return httpReq, nil
}

// buildURL assembles the absolute URL, appending the account switch key for
// partner credentials.
func (s *Session) buildURL(req Request) string {
	query := url.Values{}
	for k, vs := range req.Query {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	if s.config.AccountSwitchKey != "" {
		query.Set("accountSwitchKey", s.config.AccountSwitchKey)
	}

	reqURL := s.baseURL + req.Path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	return reqURL
}

// recordOutcome feeds the circuit breaker and per-API metrics. Client errors
// (4xx) are the caller's problem, not a service health signal.
func (s *Session) recordOutcome(req Request, statusCode int) {
	s.CircuitBreaker.RecordSuccess()
	status := "success"
	if statusCode >= 400 {
		status = "client_error"
	}
	metrics.AkamaiAPIRequestsTotal.WithLabelValues(req.Service, req.Operation, status).Inc()
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with optimized transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
