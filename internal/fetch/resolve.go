// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"mime"
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdiddy/logo-fetcher/pkg/types"
)

const defaultExt = "png"

// contentTypeExt maps image media types to file extensions.
var contentTypeExt = map[string]string{
	"image/png":                "png",
	"image/jpeg":               "jpg",
	"image/jpg":                "jpg",
	"image/gif":                "gif",
	"image/svg+xml":            "svg",
	"image/webp":               "webp",
	"image/x-icon":             "ico",
	"image/vnd.microsoft.icon": "ico",
}

// urlExt maps extensions found in URL paths to the extension we write.
var urlExt = map[string]string{
	".png":  "png",
	".jpg":  "jpg",
	".jpeg": "jpg",
	".gif":  "gif",
	".svg":  "svg",
	".webp": "webp",
	".ico":  "ico",
}

// extPattern is the set of extensions that may be declared on an entry.
var extPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// Slug derives the output filename stem from a display name: trimmed and
// lowercased, with spaces and every character other than letters, digits,
// '-' and '_' replaced with underscores. The result never contains a path
// separator or a dot.
func Slug(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, strings.ToLower(strings.TrimSpace(name)))
}

// ValidExt reports whether ext is usable as a declared extension: after
// trimming an optional leading dot and lowercasing, one or more ASCII
// letters or digits.
func ValidExt(ext string) bool {
	return extPattern.MatchString(normalizeExt(ext))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}

// SourceURL returns the URL to fetch for inst. Domains go through the logo
// service; direct URLs and site pages are returned unmodified.
func SourceURL(inst types.Institution, logoService string) (string, error) {
	switch inst.Kind() {
	case types.SourceDomain:
		return strings.TrimRight(logoService, "/") + "/" + inst.Domain, nil
	case types.SourceURL:
		return inst.URL, nil
	case types.SourceSite:
		return inst.Site, nil
	default:
		return "", fmt.Errorf("%s: %w", inst.Name, ErrNoSource)
	}
}

// Extension picks the file extension for a downloaded logo. A valid
// declared extension wins, then the response content type, then a known
// image extension in the URL path. Anything else is saved as png.
func Extension(inst types.Institution, contentType, rawURL string) string {
	if ext := normalizeExt(inst.Ext); ValidExt(ext) {
		return ext
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := contentTypeExt[mt]; ok {
			return ext
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		if ext, ok := urlExt[strings.ToLower(path.Ext(u.Path))]; ok {
			return ext
		}
	}
	return defaultExt
}

// Filename returns "<slug>.<ext>".
func Filename(inst types.Institution, ext string) string {
	return Slug(inst.Name) + "." + ext
}
