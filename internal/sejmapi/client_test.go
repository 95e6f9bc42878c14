package sejmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sejmkit/gateway/internal/apierrors"
	"github.com/sejmkit/gateway/internal/breaker"
	"github.com/sejmkit/gateway/internal/cache"
)

// withLocalBaseURL points BaseURL at a local httptest server for the
// duration of a test, restoring it on cleanup.
func withLocalBaseURL(t *testing.T, srv *httptest.Server) func() {
	t.Helper()
	orig := BaseURL
	BaseURL = srv.URL
	return func() { BaseURL = orig }
}

func TestRetrySucceedsAfterTwo503(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"items":[]}`))
	}))
	defer srv.Close()
	restore := withLocalBaseURL(t, srv)
	defer restore()

	c := New(cache.New(100), breaker.New(10, time.Hour, 3), 5*time.Second, 5)
	var out map[string]any
	err := c.GetJSON(context.Background(), "acts/search", nil, 0, &out)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func Test404FailsAfterOneAttempt(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()
	restore := withLocalBaseURL(t, srv)
	defer restore()

	c := New(cache.New(100), breaker.New(10, time.Hour, 3), 5*time.Second, 5)
	var out map[string]any
	err := c.GetJSON(context.Background(), "acts/DU/2024/1", nil, 0, &out)
	require.Error(t, err)
	var nf *apierrors.ActNotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestBreakerOpensAfterRepeated503(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	restore := withLocalBaseURL(t, srv)
	defer restore()

	b := breaker.New(2, time.Hour, 3)
	c := New(cache.New(100), b, 5*time.Second, 5)

	var out map[string]any
	_ = c.GetJSON(context.Background(), "acts/search", nil, 0, &out)
	assert.False(t, b.CanExecute())

	var calledDuringOpen bool
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledDuringOpen = true
		w.WriteHeader(http.StatusOK)
	}))
	defer srv2.Close()
	restore2 := withLocalBaseURL(t, srv2)
	defer restore2()

	err := c.GetJSON(context.Background(), "acts/search", nil, 0, &out)
	require.Error(t, err)
	var unavailable *apierrors.ApiUnavailableError
	assert.ErrorAs(t, err, &unavailable)
	assert.False(t, calledDuringOpen)
}

func TestJSONCacheHitAvoidsSecondRequest(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":0,"items":[]}`))
	}))
	defer srv.Close()
	restore := withLocalBaseURL(t, srv)
	defer restore()

	c := New(cache.New(100), breaker.New(10, time.Hour, 3), 5*time.Second, 5)
	var out1, out2 map[string]any
	require.NoError(t, c.GetJSON(context.Background(), "keywords", nil, time.Minute, &out1))
	require.NoError(t, c.GetJSON(context.Background(), "keywords", nil, time.Minute, &out2))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
