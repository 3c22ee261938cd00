// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the single-request HTTP helper used by the fetcher.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps how much of a response body Get will read. Logos are
// small; anything larger is almost certainly not an image.
var MaxBodyBytes int64 = 10 << 20

// Response is a fully-read HTTP response.
type Response struct {
	// URL is the final request URL after redirects.
	URL string

	StatusCode  int
	ContentType string
	Body        []byte
}

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Get issues one GET for url with the given User-Agent and reads the body.
// A non-2xx status returns a *StatusError. Errors from the client (DNS,
// timeouts, resets) and body read failures are returned wrapped. There are
// no retries.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if int64(len(body)) > MaxBodyBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, MaxBodyBytes)
	}

	return &Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
