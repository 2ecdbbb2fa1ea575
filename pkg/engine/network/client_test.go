// Olympus: An OlympusScan content source for manga reader hosts.
// Copyright (C) 2025 Luca M. Schmidt (LuMiSxh)
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package network

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"Olympus/pkg/engine/logger"
	"Olympus/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(retries int) *Client {
	return NewClient(Options{
		RequestsPerSecond: 1000,
		Timeout:           5 * time.Second,
		Retries:           retries,
		UserAgent:         "olympus-test",
		Referer:           "https://api.test/",
	}, logger.Nop{})
}

func TestClient_SetsDefaultHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	var out map[string]interface{}
	require.NoError(t, newTestClient(0).FetchJSON(context.Background(), srv.URL, &out))

	assert.Equal(t, "olympus-test", got.Get("User-Agent"))
	assert.Equal(t, "https://api.test/", got.Get("Referer"))
	assert.Equal(t, "application/json", got.Get("Accept"))
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		sentinel error
	}{
		{http.StatusNotFound, errors.ErrNotFound},
		{http.StatusForbidden, errors.ErrUnauthorized},
		{http.StatusTooManyRequests, errors.ErrRateLimit},
		{http.StatusBadRequest, errors.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestClient(2).Get(context.Background(), srv.URL)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, tt.status, errors.GetContext(err)["status_code"])
			assert.Equal(t, int32(1), calls.Load(), "client errors are not retried")
		})
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, newTestClient(1).FetchJSON(context.Background(), srv.URL, &out))
	assert.True(t, out.OK)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(0).Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrServerError))
	assert.True(t, errors.IsNetwork(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<!doctype html><title>Mantenimiento</title>`)
	}))
	defer srv.Close()

	var out map[string]interface{}
	err := newTestClient(0).FetchJSON(context.Background(), srv.URL, &out)
	require.Error(t, err)
	assert.True(t, errors.IsParseFailure(err))
	assert.Contains(t, errors.GetContext(err)["response_preview"], "Mantenimiento")
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(0).Get(context.Background(), url)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNetworkIssue))
	assert.Equal(t, errors.CategoryNetwork, errors.GetCategory(err))
}

func TestRateLimiter_SpacesRequestsPerDomain(t *testing.T) {
	limiter := NewRateLimiter(20)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Wait(ctx, "https://a.test/x"))
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)

	// another domain has its own bucket
	start = time.Now()
	require.NoError(t, limiter.Wait(ctx, "https://b.test/x"))
	assert.Less(t, time.Since(start), 40*time.Millisecond)
}

func TestRateLimiter_CancelledContext(t *testing.T) {
	limiter := NewRateLimiter(0.1)
	require.NoError(t, limiter.Wait(context.Background(), "https://a.test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx, "https://a.test")
	require.Error(t, err)
	assert.Equal(t, errors.CategoryTimeout, errors.GetCategory(err))
}
