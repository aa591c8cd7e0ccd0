package newsapi

import (
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultBaseURL   = "https://newsapi.org"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "newsapi-go/0.1.0"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	retry      RetryStrategy
	maxRetries int
	retryOn    []int
	logger     *slog.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. It takes precedence over
// WithTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// WithRetry sets the retry strategy and the maximum number of retries
// applied to transient failures. maxRetries counts retries after the
// initial attempt.
func WithRetry(strategy RetryStrategy, maxRetries int) Option {
	return func(c *clientConfig) {
		c.retry = strategy
		c.maxRetries = maxRetries
	}
}

// WithRetryOn sets the HTTP status codes that count as transient.
// Default: [500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithLogger sets a logger for debug-level request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
