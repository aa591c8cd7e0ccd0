package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Defaults applied when the caller does not override them.
const (
	DefaultBaseURL   = "https://newsapi.org"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "newsapi-go/0.1.0"
)

// Config configures the API client.
type Config struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTPClient *http.Client
	Retry      *RetryConfig
	Logger     *slog.Logger
}

// Client is the HTTP client for the NewsAPI endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *slog.Logger
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		retry:      cfg.Retry,
		logger:     cfg.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	c.baseURL = strings.TrimSuffix(c.baseURL, "/")
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if c.retry == nil {
		c.retry = &RetryConfig{Strategy: StrategyNone}
	}
	if c.retry.RetryableOn == nil {
		c.retry.RetryableOn = DefaultRetryableOn
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c, nil
}

// Get issues a GET request against path with the given query parameters,
// retrying transient failures per the retry configuration, and decodes the
// JSON body into result.
func (c *Client) Get(ctx context.Context, path string, query url.Values, result any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		err := c.get(ctx, requestURL, attempt, result)
		if err == nil {
			return nil
		}
		if !c.retryable(err) || !c.retry.ShouldRetry(attempt) {
			return err
		}

		c.logger.Debug("retrying request",
			"url", requestURL,
			"attempt", attempt,
			"delay", c.retry.Delay(attempt),
			"error", err)

		if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
			return waitErr
		}
	}
}

func (c *Client) get(ctx context.Context, requestURL string, attempt int, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("issuing request", "url", requestURL, "attempt", attempt)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err, URL: requestURL, Attempt: attempt}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err, URL: requestURL, Attempt: attempt}
	}

	c.logger.Debug("response received", "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(body, resp.StatusCode)
	}

	// A 200 can still carry a logical failure in the envelope.
	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &DecodeError{Err: err}
	}
	if envelope.Status == "error" {
		return parseErrorResponse(body, resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &DecodeError{Err: err}
		}
	}

	return nil
}

// retryable reports whether the failure is transient. Transport errors and
// retryable status codes qualify; validation, decode and upstream logical
// errors are terminal.
func (c *Client) retryable(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return c.retry.RetryableOn(apiErr.StatusCode)
	}
	return false
}

// parseErrorResponse maps an upstream error body to an *APIError. Bodies
// that cannot be parsed fall back to unexpectedError, or rateLimited when
// the status code is 429.
func parseErrorResponse(body []byte, statusCode int) error {
	var errResp struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && (errResp.Code != "" || errResp.Status == "error") {
		message := errResp.Message
		if message == "" {
			message = "unknown error"
		}
		return &APIError{
			StatusCode: statusCode,
			Code:       parseErrorCode(errResp.Code, statusCode),
			Message:    message,
		}
	}

	code := CodeUnexpectedError
	if statusCode == http.StatusTooManyRequests {
		code = CodeRateLimited
	}
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    strings.TrimSpace(string(body)),
	}
}

func parseErrorCode(code string, statusCode int) ErrorCode {
	switch ErrorCode(code) {
	case CodeAPIKeyDisabled, CodeAPIKeyExhausted, CodeAPIKeyInvalid, CodeAPIKeyMissing,
		CodeParameterInvalid, CodeParametersMissing, CodeRateLimited,
		CodeSourcesTooMany, CodeSourceDoesNotExist, CodeUnexpectedError:
		return ErrorCode(code)
	}
	if statusCode == http.StatusTooManyRequests {
		return CodeRateLimited
	}
	if code == "" {
		return CodeUnexpectedError
	}
	return CodeUnknown
}
