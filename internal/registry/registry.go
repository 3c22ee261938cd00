// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry holds the institution list driving a fetch run: the
// built-in defaults and loading of YAML registry files.
package registry

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/logo-fetcher/internal/fetch"
	"github.com/pdiddy/logo-fetcher/pkg/types"
)

var defaults = []types.Institution{
	{Name: "Boursorama", Domain: "boursorama.com"},
	{Name: "Trade Republic", Domain: "traderepublic.com"},
	{Name: "Revolut", Domain: "revolut.com"},
	{Name: "Degiro", Domain: "degiro.com"},
	{Name: "Interactive Brokers", Domain: "interactivebrokers.com"},
	{Name: "Binance", Domain: "binance.com"},
	{Name: "Coinbase", Domain: "coinbase.com"},
	{Name: "Kraken", Domain: "kraken.com"},
	{Name: "Fortuneo", Domain: "fortuneo.fr"},
	{Name: "Credit Agricole", Domain: "credit-agricole.fr"},
	{Name: "BNP Paribas", Domain: "mabanque.bnpparibas"},
	{Name: "Societe Generale", Domain: "societegenerale.fr"},
}

// Default returns a copy of the built-in registry in fetch order.
func Default() []types.Institution {
	out := make([]types.Institution, len(defaults))
	copy(out, defaults)
	return out
}

// File is the on-disk registry format.
type File struct {
	Institutions []types.Institution `yaml:"institutions"`
}

// Load reads and validates a YAML registry file.
func Load(path string) ([]types.Institution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	if len(f.Institutions) == 0 {
		return nil, fmt.Errorf("registry %s has no institutions", path)
	}
	if err := Validate(f.Institutions); err != nil {
		return nil, fmt.Errorf("registry %s: %w", path, err)
	}
	return f.Institutions, nil
}

// Validate checks every entry and returns all problems joined. Entries must
// have a name and exactly one source; url and site sources must be absolute
// http(s) URLs; no two names may map to the same output file.
func Validate(entries []types.Institution) error {
	var errs []error
	seen := make(map[string]string)
	for i, inst := range entries {
		name := strings.TrimSpace(inst.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("entry %d: missing name", i))
			continue
		}
		if inst.Kind() == types.SourceNone {
			errs = append(errs, fmt.Errorf("%s: exactly one of domain, url or site is required", name))
		}
		if inst.URL != "" {
			if err := checkHTTPURL(inst.URL); err != nil {
				errs = append(errs, fmt.Errorf("%s: url: %w", name, err))
			}
		}
		if inst.Site != "" {
			if err := checkHTTPURL(inst.Site); err != nil {
				errs = append(errs, fmt.Errorf("%s: site: %w", name, err))
			}
		}
		if strings.ContainsAny(inst.Domain, "/: ") {
			errs = append(errs, fmt.Errorf("%s: domain %q must be a bare host name", name, inst.Domain))
		}
		if inst.Ext != "" && !fetch.ValidExt(inst.Ext) {
			errs = append(errs, fmt.Errorf("%s: ext %q must be lowercase letters and digits only", name, inst.Ext))
		}
		slug := fetch.Slug(name)
		if prev, ok := seen[slug]; ok {
			errs = append(errs, fmt.Errorf("%s: output name %q already used by %s", name, slug, prev))
			continue
		}
		seen[slug] = name
	}
	return errors.Join(errs...)
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}
