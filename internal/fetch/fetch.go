// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads institution logos into an output directory.
// Entries are fetched one at a time in registry order; a failure on one
// entry is recorded and logged, and the batch moves on.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/pdiddy/logo-fetcher/internal/httputil"
	"github.com/pdiddy/logo-fetcher/pkg/types"
)

const (
	DefaultOutputDir   = "assets/logos"
	DefaultLogoService = "https://logo.clearbit.com"
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	DefaultTimeout     = 30 * time.Second
)

// Result is the outcome of fetching one entry. Exactly one of Path and Err
// is set.
type Result struct {
	Institution types.Institution

	// URL is the image URL that was requested, when one was resolved.
	URL string

	// Path is the written file on success.
	Path string

	Err error
}

// OK reports whether the entry was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Succeeded int
	Failed    int
	Results   []Result
}

// Total returns the number of entries processed.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any entry failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Failures returns the failed results in registry order.
func (r BatchResult) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

func (r *BatchResult) add(res Result) {
	if res.OK() {
		r.Succeeded++
	} else {
		r.Failed++
	}
	r.Results = append(r.Results, res)
}

// Fetcher downloads logos for registry entries.
type Fetcher struct {
	client *http.Client
	fs     afero.Fs
	cfg    types.FetchConfig
	log    *slog.Logger
}

// New returns a Fetcher. A nil client gets one with cfg.Timeout, a nil fs
// is the OS filesystem, and a nil logger discards output. Empty config
// fields take the package defaults.
func New(client *http.Client, fs afero.Fs, cfg types.FetchConfig, logger *slog.Logger) *Fetcher {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.LogoService == "" {
		cfg.LogoService = DefaultLogoService
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{client: client, fs: fs, cfg: cfg, log: logger}
}

// Config returns the effective configuration after defaults.
func (f *Fetcher) Config() types.FetchConfig {
	return f.cfg
}

// EnsureDir creates dir and its parents if missing. It reports whether it
// created the directory; an existing directory is not an error.
func EnsureDir(fs afero.Fs, dir string) (bool, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return false, &FilesystemError{Op: "stat", Path: dir, Err: err}
	}
	if exists {
		return false, nil
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return false, &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	return true, nil
}

// Run fetches every entry in order and returns the per-entry results.
// Individual failures never stop the batch. If the output directory cannot
// be prepared every entry fails with that error. If ctx is cancelled the
// remaining entries are recorded as failed with ctx.Err().
func (f *Fetcher) Run(ctx context.Context, entries []types.Institution) BatchResult {
	var result BatchResult
	dir := f.cfg.OutputDir

	created, err := EnsureDir(f.fs, dir)
	if err != nil {
		f.log.Error("cannot prepare output directory", "dir", dir, "error", err)
		for _, inst := range entries {
			result.add(Result{Institution: inst, Err: err})
		}
		f.logSummary(result)
		return result
	}
	if created {
		f.log.Info("created output directory", "dir", dir)
	}

	f.log.Info("starting logo download", "count", len(entries), "dir", dir)
	for i, inst := range entries {
		if err := ctx.Err(); err != nil {
			f.log.Warn("batch cancelled", "remaining", len(entries)-i, "error", err)
			for _, rest := range entries[i:] {
				result.add(Result{Institution: rest, Err: err})
			}
			break
		}
		res := f.FetchOne(ctx, inst)
		f.report(res)
		result.add(res)
	}
	f.logSummary(result)
	return result
}

// FetchOne resolves, downloads and writes the logo for one entry.
func (f *Fetcher) FetchOne(ctx context.Context, inst types.Institution) Result {
	res := Result{Institution: inst}

	if Slug(inst.Name) == "" {
		res.Err = ErrNoName
		return res
	}

	src, err := SourceURL(inst, f.cfg.LogoService)
	if err != nil {
		res.Err = err
		return res
	}
	if inst.Kind() == types.SourceSite {
		src, err = f.resolveSite(ctx, src)
		if err != nil {
			res.Err = err
			return res
		}
	}
	res.URL = src

	resp, err := httputil.Get(ctx, f.client, src, f.cfg.UserAgent)
	if err != nil {
		res.Err = classify(src, err)
		return res
	}

	path, err := outputPath(f.cfg.OutputDir, Filename(inst, Extension(inst, resp.ContentType, resp.URL)))
	if err != nil {
		res.Err = err
		return res
	}
	if err := writeFile(f.fs, path, resp.Body); err != nil {
		res.Err = err
		return res
	}
	res.Path = path
	return res
}

func (f *Fetcher) report(res Result) {
	if res.OK() {
		f.log.Info("downloaded", "name", res.Institution.Name, "path", res.Path)
		return
	}
	f.log.Error("download failed", "name", res.Institution.Name, "error", res.Err)
}

func (f *Fetcher) logSummary(r BatchResult) {
	f.log.Info("batch complete", "succeeded", r.Succeeded, "failed", r.Failed, "total", r.Total())
}

// classify maps an httputil error onto the fetch error taxonomy.
func classify(url string, err error) error {
	var se *HTTPStatusError
	if errors.As(err, &se) {
		return se
	}
	return &TransportError{URL: url, Err: err}
}

// outputPath joins name onto dir and fails unless the result is a direct
// child of dir.
func outputPath(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if name == "" || filepath.Base(name) != name || filepath.Dir(path) != filepath.Clean(dir) {
		return "", &FilesystemError{Op: "resolve", Path: path, Err: fmt.Errorf("%q escapes output directory %s", name, dir)}
	}
	return path, nil
}

// writeFile writes data to path through a temp file in the same directory
// and a rename, so a failed write never leaves a partial logo behind. An
// existing file at path is replaced.
func writeFile(fs afero.Fs, path string, data []byte) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), ".logo-*.tmp")
	if err != nil {
		return &FilesystemError{Op: "create", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		fs.Remove(tmpPath)
		return &FilesystemError{Op: "write", Path: path, Err: writeErr}
	}
	if closeErr != nil {
		fs.Remove(tmpPath)
		return &FilesystemError{Op: "close", Path: path, Err: closeErr}
	}

	if err := fs.Chmod(tmpPath, 0o644); err != nil {
		fs.Remove(tmpPath)
		return &FilesystemError{Op: "chmod", Path: path, Err: err}
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		fs.Remove(tmpPath)
		return &FilesystemError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
