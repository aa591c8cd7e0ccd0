package newsapi

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/newsapi/client-go/internal/api"
)

// EnvAPIKey is the environment variable consulted by FromEnv.
const EnvAPIKey = "NEWS_API_KEY"

// Endpoint paths.
const (
	topHeadlinesPath = "/v2/top-headlines"
	everythingPath   = "/v2/everything"
	sourcesPath      = "/v2/top-headlines/sources"
)

// Client calls the NewsAPI REST endpoints. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	apiClient *api.Client
}

// New creates a client with an explicit API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   defaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{apiClient: apiClient}, nil
}

// FromEnv creates a client using the NEWS_API_KEY environment variable.
// A .env file in the working directory is loaded first if present.
func FromEnv(opts ...Option) (*Client, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set %s or pass an explicit key to New", ErrMissingAPIKey, EnvAPIKey)
	}

	return New(apiKey, opts...)
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	retry := &api.RetryConfig{
		Strategy:   cfg.retry.kind,
		MaxRetries: cfg.maxRetries,
		BaseDelay:  cfg.retry.delay,
	}
	if len(cfg.retryOn) > 0 {
		codes := make(map[int]struct{}, len(cfg.retryOn))
		for _, code := range cfg.retryOn {
			codes[code] = struct{}{}
		}
		retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		UserAgent:  cfg.userAgent,
		HTTPClient: httpClient,
		Retry:      retry,
		Logger:     cfg.logger,
	})
}

// TopHeadlines returns current breaking-news articles matching the request.
func (c *Client) TopHeadlines(ctx context.Context, req *TopHeadlinesRequest) (*ArticlesPage, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "must not be nil"}
	}

	var page ArticlesPage
	if err := c.apiClient.Get(ctx, topHeadlinesPath, req.values(), &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// Everything returns full-text search results across the historical
// article set.
func (c *Client) Everything(ctx context.Context, req *EverythingRequest) (*ArticlesPage, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Message: "must not be nil"}
	}

	var page ArticlesPage
	if err := c.apiClient.Get(ctx, everythingPath, req.values(), &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}

// Sources lists available publishers and their metadata.
func (c *Client) Sources(ctx context.Context, req *SourcesRequest) (*SourcesPage, error) {
	if req == nil {
		req = &SourcesRequest{}
	}

	var page SourcesPage
	if err := c.apiClient.Get(ctx, sourcesPath, req.values(), &page); err != nil {
		return nil, wrapError(err)
	}
	return &page, nil
}
