package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/logo-fetcher/pkg/types"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", false)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "name", "Kraken")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "name=Kraken")
	assert.NotContains(t, out, "\x1b[", "no colour on a non-terminal writer")

	buf.Reset()
	logger, err = newLogger(&buf, "debug", true)
	require.NoError(t, err)
	logger.Debug("json line")
	assert.Contains(t, buf.String(), `"msg":"json line"`)

	_, err = newLogger(&buf, "loud", false)
	assert.ErrorContains(t, err, "invalid log level")
}

func TestLoadFetchConfig(t *testing.T) {
	defer viper.Reset()
	viper.Set("output_dir", "out/logos")
	viper.Set("logo_service", "https://logos.example")
	viper.Set("user_agent", "Mozilla/5.0")
	viper.Set("timeout", "5s")
	viper.Set("registry", "banks.yaml")
	viper.Set("strict", true)

	cfg := loadFetchConfig()
	assert.Equal(t, types.FetchConfig{
		HTTPConfig:  types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "Mozilla/5.0"},
		OutputDir:   "out/logos",
		LogoService: "https://logos.example",
		Registry:    "banks.yaml",
		Strict:      true,
	}, cfg)
}

func TestLoadEntries(t *testing.T) {
	entries, err := loadEntries("")
	require.NoError(t, err)
	assert.Len(t, entries, 12)

	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("institutions:\n  - name: Boursorama\n    domain: boursorama.com\n"), 0o644))
	entries, err = loadEntries(path)
	require.NoError(t, err)
	assert.Equal(t, []types.Institution{{Name: "Boursorama", Domain: "boursorama.com"}}, entries)
}

func TestRunBatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boursorama.com" {
			w.Write([]byte("PNGDATA"))
			return
		}
		http.NotFound(w, r)
	}))
	defer ts.Close()

	entries := []types.Institution{
		{Name: "Kraken", URL: ts.URL + "/kraken.svg"},
		{Name: "Boursorama", Domain: "boursorama.com"},
	}
	out := filepath.Join(t.TempDir(), "assets", "logos")
	cfg := types.FetchConfig{OutputDir: out, LogoService: ts.URL}

	// Partial failure is not an error by default.
	require.NoError(t, runBatch(context.Background(), cfg, entries, nil))

	data, err := os.ReadFile(filepath.Join(out, "boursorama.png"))
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))

	cfg.Strict = true
	err = runBatch(context.Background(), cfg, entries, nil)
	assert.EqualError(t, err, "1 of 2 logo(s) failed to download")
}

func TestPrintEntries(t *testing.T) {
	var buf bytes.Buffer
	err := printEntries(&buf, []types.Institution{
		{Name: "Credit Agricole", Domain: "credit-agricole.fr"},
		{Name: "Kraken", URL: "https://example.com/kraken.svg"},
	}, "https://logo.clearbit.com")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "credit_agricole.*")
	assert.Contains(t, out, "https://logo.clearbit.com/credit-agricole.fr")
	assert.Contains(t, out, "https://example.com/kraken.svg")

	err = printEntries(&buf, []types.Institution{{Name: "Nothing"}}, "https://logo.clearbit.com")
	assert.Error(t, err)
}
