// Scope rules: a crawl stays on the start page's host and below its
// directory, and never follows links to downloads or static assets.

package crawl

import (
	"net/url"
	"path"
	"strings"
)

// skippedExtensions are linked files that are never help pages.
var skippedExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true,
	".css": true, ".js": true, ".mjs": true, ".json": true, ".xml": true,
	".woff": true, ".woff2": true, ".ttf": true,
	".mp4": true, ".webm": true, ".mp3": true,
	".zip": true, ".gz": true,
	".pdf": true, ".docx": true, ".xlsx": true,
}

// Scope decides which links belong to the same help center.
type Scope struct {
	host   string
	prefix string
}

// NewScope derives the crawl scope from the start URL: its host and the
// directory holding the start page.
// Example: https://docs.embedpro.app/help/intro → docs.embedpro.app, /help/
func NewScope(start *url.URL) Scope {
	dir := start.Path
	if dir == "" {
		dir = "/"
	}
	if !strings.HasSuffix(dir, "/") {
		dir = path.Dir(dir)
	}
	if !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return Scope{host: start.Host, prefix: dir}
}

// Contains reports whether rawURL is an in-scope help page.
func (s Scope) Contains(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host != s.host {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	p := parsed.Path
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p+"/", s.prefix) && !strings.HasPrefix(p, s.prefix) {
		return false
	}
	return !skippedExtensions[strings.ToLower(path.Ext(p))]
}

// NormalizeURL strips fragments, queries and trailing slashes for
// deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.Fragment = ""
	parsed.RawQuery = ""

	// Keep the root "/".
	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}
	return parsed.String()
}
