// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceKind identifies where an institution's logo comes from.
type SourceKind string

const (
	SourceNone   SourceKind = ""
	SourceDomain SourceKind = "domain"
	SourceURL    SourceKind = "url"
	SourceSite   SourceKind = "site"
)

// Institution is one registry entry: a display name plus exactly one logo
// source. Entries are configuration data and are never modified by the
// fetcher.
type Institution struct {
	// Name is the display name (e.g. "Credit Agricole"). The output filename
	// is derived from it.
	Name string `json:"name" yaml:"name"`

	// Domain is a bare domain looked up through the logo service
	// (e.g. "boursorama.com").
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`

	// URL is a direct image URL, fetched as-is.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Site is a homepage URL scraped for an icon link.
	Site string `json:"site,omitempty" yaml:"site,omitempty"`

	// Ext optionally pins the file extension (e.g. "svg"), overriding
	// content-type and URL detection.
	Ext string `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// Kind reports which source the entry carries. Entries with more than one
// source report SourceNone; registry validation rejects them.
func (i Institution) Kind() SourceKind {
	var kind SourceKind
	n := 0
	if i.Domain != "" {
		kind = SourceDomain
		n++
	}
	if i.URL != "" {
		kind = SourceURL
		n++
	}
	if i.Site != "" {
		kind = SourceSite
		n++
	}
	if n != 1 {
		return SourceNone
	}
	return kind
}

// Source returns the raw source value for the entry's kind.
func (i Institution) Source() string {
	switch i.Kind() {
	case SourceDomain:
		return i.Domain
	case SourceURL:
		return i.URL
	case SourceSite:
		return i.Site
	default:
		return ""
	}
}
