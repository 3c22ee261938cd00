// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"errors"
	"fmt"

	"github.com/pdiddy/logo-fetcher/internal/httputil"
)

var (
	// ErrNoSource is returned for an entry without exactly one logo source.
	ErrNoSource = errors.New("no logo source")

	// ErrNoName is returned for an entry whose name yields an empty filename.
	ErrNoName = errors.New("missing name")

	// ErrNoIcon is returned when a homepage carries no usable icon link.
	ErrNoIcon = errors.New("no icon found on page")
)

// TransportError is a failure to get any response: DNS, connection reset,
// timeout, or a body that could not be read.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error fetching %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is a response with a non-2xx status.
type HTTPStatusError = httputil.StatusError

// FilesystemError is a failure to create the output directory or write a file.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }
