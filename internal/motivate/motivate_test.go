package motivate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/habitflare/internal/motivate"
)

func TestFallback(t *testing.T) {
	t.Run("buckets by streak length", func(t *testing.T) {
		assert.Equal(t, motivate.Fallback(0), motivate.Fallback(-5))
		assert.Equal(t, motivate.Fallback(1), motivate.Fallback(6))
		assert.Equal(t, motivate.Fallback(7), motivate.Fallback(29))
		assert.Equal(t, motivate.Fallback(30), motivate.Fallback(365))
	})

	t.Run("never empty", func(t *testing.T) {
		for _, streak := range []int{-1, 0, 1, 7, 30, 1000} {
			assert.NotEmpty(t, motivate.Fallback(streak))
		}
	})
}

func TestFetch_NilProvider(t *testing.T) {
	got := motivate.Fetch(context.Background(), nil, 5, "Read")
	assert.Equal(t, motivate.Fallback(5), got)
}

func TestGeminiProvider_Motivate(t *testing.T) {
	t.Run("parses a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Keep going!  "}]}}]}`))
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		got, err := p.Motivate(context.Background(), 5, "Read")
		require.NoError(t, err)
		assert.Equal(t, "Keep going!", got)
	})

	t.Run("errors on non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		_, err := p.Motivate(context.Background(), 5, "")
		assert.Error(t, err)
	})

	t.Run("errors on empty candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		_, err := p.Motivate(context.Background(), 5, "")
		assert.Error(t, err)
	})
}

func TestFetch_DegradesToFallback(t *testing.T) {
	t.Run("provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		got := motivate.Fetch(context.Background(), p, 10, "Read")
		assert.Equal(t, motivate.Fallback(10), got)
	})

	t.Run("provider returns empty text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`))
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		got := motivate.Fetch(context.Background(), p, 3, "")
		assert.Equal(t, motivate.Fallback(3), got)
	})

	t.Run("provider success passes through", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"You got this"}]}}]}`))
		}))
		defer server.Close()

		p := motivate.NewGeminiProviderWithEndpoint("test-key", server.URL)
		got := motivate.Fetch(context.Background(), p, 3, "")
		assert.Equal(t, "You got this", got)
	})
}

func TestNewGeminiProvider_NoKey(t *testing.T) {
	t.Setenv(motivate.APIKeyEnv, "")
	assert.Nil(t, motivate.NewGeminiProvider())

	t.Setenv(motivate.APIKeyEnv, "some-key")
	assert.NotNil(t, motivate.NewGeminiProvider())
}
