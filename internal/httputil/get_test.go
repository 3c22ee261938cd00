// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("PNGDATA"))
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL+"/logo", "Mozilla/5.0")
	require.NoError(t, err)

	assert.Equal(t, "Mozilla/5.0", gotUA)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, []byte("PNGDATA"), resp.Body)
	assert.Equal(t, ts.URL+"/logo", resp.URL)
}

func TestGet_FollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusFound)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("moved"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL+"/old", "")
	require.NoError(t, err)
	assert.Equal(t, ts.URL+"/new", resp.URL)
	assert.Equal(t, []byte("moved"), resp.Body)
}

func TestGet_StatusError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "ua")
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
	assert.Equal(t, ts.URL, se.URL)
	// No retries.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	client := ts.Client()
	ts.Close()

	_, err := Get(context.Background(), client, url, "ua")
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestGet_BodyTooLarge(t *testing.T) {
	old := MaxBodyBytes
	MaxBodyBytes = 4
	defer func() { MaxBodyBytes = old }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("0123456789"))
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "ua")
	assert.ErrorContains(t, err, "exceeds 4 bytes")
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("x"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "ua")
	assert.ErrorIs(t, err, context.Canceled)
}
