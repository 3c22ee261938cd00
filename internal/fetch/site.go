// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/logo-fetcher/internal/httputil"
)

// iconSelectors are tried in order; the first match with a non-empty
// attribute wins.
var iconSelectors = []struct {
	selector string
	attr     string
}{
	{`link[rel="apple-touch-icon"]`, "href"},
	{`link[rel="apple-touch-icon-precomposed"]`, "href"},
	{`meta[property="og:image"]`, "content"},
	{`link[rel~="icon"]`, "href"},
}

// resolveSite fetches a homepage and returns the absolute URL of its best
// icon link.
func (f *Fetcher) resolveSite(ctx context.Context, pageURL string) (string, error) {
	resp, err := httputil.Get(ctx, f.client, pageURL, f.cfg.UserAgent)
	if err != nil {
		return "", classify(pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	base, err := url.Parse(resp.URL)
	if err != nil {
		return "", fmt.Errorf("parsing page URL %s: %w", resp.URL, err)
	}

	href := iconHref(doc)
	if href == "" {
		return "", fmt.Errorf("%s: %w", pageURL, ErrNoIcon)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parsing icon link %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func iconHref(doc *goquery.Document) string {
	for _, s := range iconSelectors {
		var found string
		doc.Find(s.selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if v, ok := sel.Attr(s.attr); ok && strings.TrimSpace(v) != "" {
				found = strings.TrimSpace(v)
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}
	return ""
}
