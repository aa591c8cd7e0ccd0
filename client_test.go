package newsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com"),
		WithRetry(RetryExponential(time.Second), 3),
		WithTimeout(time.Minute),
	)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")

	client, err := FromEnv()
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFromEnv_MissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestClient_TopHeadlines(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"totalResults": 1,
			"articles": [{
				"source": {"id": "the-verge", "name": "The Verge"},
				"author": "Jane Roe",
				"title": "Chipmakers rally",
				"url": "https://example.com/chips",
				"publishedAt": "2025-03-20T08:30:00Z"
			}]
		}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	req, err := NewTopHeadlines().Country(CountryUS).Build()
	require.NoError(t, err)

	page, err := client.TopHeadlines(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "ok", page.Status)
	assert.Equal(t, 1, page.TotalResults)
	require.Len(t, page.Articles, 1)

	article := page.Articles[0]
	assert.Equal(t, "the-verge", article.Source.ID)
	assert.Equal(t, "The Verge", article.Source.Name)
	assert.Equal(t, "Chipmakers rally", article.Title)
	assert.Equal(t, time.Date(2025, 3, 20, 8, 30, 0, 0, time.UTC), article.PublishedAt)
}

func TestClient_TopHeadlines_NilRequest(t *testing.T) {
	client, err := New("test-key")
	require.NoError(t, err)

	_, err = client.TopHeadlines(context.Background(), nil)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestClient_Everything(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, "nvidia", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	req, err := NewEverything().Query("nvidia").Build()
	require.NoError(t, err)

	page, err := client.Everything(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, page.Articles)
}

func TestClient_Sources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines/sources", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"sources": [{
				"id": "bbc-news",
				"name": "BBC News",
				"description": "BBC News coverage",
				"url": "https://www.bbc.co.uk/news",
				"category": "general",
				"language": "en",
				"country": "gb"
			}]
		}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	req, err := NewSources().Country(CountryGB).Build()
	require.NoError(t, err)

	page, err := client.Sources(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, page.Sources, 1)

	source := page.Sources[0]
	assert.Equal(t, "bbc-news", source.ID)
	assert.Equal(t, CategoryGeneral, source.Category)
	assert.Equal(t, LanguageEN, source.Language)
	assert.Equal(t, CountryGB, source.Country)
}

func TestClient_Sources_NilRequestListsAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"status":"ok","sources":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Sources(context.Background(), nil)
	assert.NoError(t, err)
}

func TestClient_UpstreamError_NoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("bad-key",
		WithBaseURL(srv.URL),
		WithRetry(RetryConstant(time.Millisecond), 5),
	)
	require.NoError(t, err)

	req, err := NewTopHeadlines().Country(CountryUS).Build()
	require.NoError(t, err)

	_, err = client.TopHeadlines(context.Background(), req)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeAPIKeyInvalid, apiErr.Code)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), calls.Load(), "upstream API errors consume no retries")
}

func TestClient_RecoversAfterTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":3,"articles":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key",
		WithBaseURL(srv.URL),
		WithRetry(RetryConstant(time.Millisecond), 3),
	)
	require.NoError(t, err)

	req, err := NewEverything().Query("nvidia").Build()
	require.NoError(t, err)

	page, err := client.Everything(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalResults)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_WithRetryOn_OverridesClassifier(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"status":"error","code":"rateLimited","message":"slow down"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key",
		WithBaseURL(srv.URL),
		WithRetry(RetryConstant(time.Millisecond), 2),
		WithRetryOn([]int{429, 500, 502, 503, 504}),
	)
	require.NoError(t, err)

	req, err := NewEverything().Query("nvidia").Build()
	require.NoError(t, err)

	_, err = client.Everything(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NetworkFailureSurfacesAfterRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := New("test-key",
		WithBaseURL(srv.URL),
		WithRetry(RetryConstant(time.Millisecond), 1),
	)
	require.NoError(t, err)

	req, err := NewSources().Build()
	require.NoError(t, err)

	_, err = client.Sources(context.Background(), req)

	var netErr *NetworkError
	assert.ErrorAs(t, err, &netErr)
}

func TestClient_DecodeErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not even close to json`))
	}))
	t.Cleanup(srv.Close)

	client, err := New("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	req, err := NewTopHeadlines().Query("quakes").Build()
	require.NoError(t, err)

	_, err = client.TopHeadlines(context.Background(), req)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}
