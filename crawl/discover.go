// Package crawl discovers the pages of a help center for the importer.
// Starting from one page it follows in-scope links breadth first, so pages
// come back in the order a reader would reach them.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/guidegen/core"
)

// DefaultMaxPages caps a crawl.
const DefaultMaxPages = 50

// Page is one fetched help page.
type Page struct {
	URL   string
	Title string
	HTML  string
}

// Discover fetches startURL and every in-scope page reachable from it, up
// to maxPages pages. The start page must load; later failures are logged
// and skipped.
func Discover(ctx context.Context, startURL string, fetcher core.Fetcher, maxPages int, log *zap.Logger) ([]Page, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start, err := url.Parse(startURL)
	if err != nil || start.Host == "" {
		return nil, fmt.Errorf("invalid start URL %q (must include scheme, e.g. https://docs.example.com/help)", startURL)
	}
	scope := NewScope(start)

	queue := NewQueue(maxPages)
	queue.Add(NormalizeURL(startURL))

	var pages []Page
	for queue.HasNext() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		current := queue.Next()

		result, err := fetcher.Fetch(ctx, current)
		if err != nil {
			if len(pages) == 0 {
				return nil, fmt.Errorf("fetching start page: %w", err)
			}
			log.Warn("Skipping page", zap.String("url", current), zap.Error(err))
			continue
		}

		title, links, err := parsePage(result.HTML, current)
		if err != nil {
			log.Warn("Skipping unparsable page", zap.String("url", current), zap.Error(err))
			continue
		}
		pages = append(pages, Page{URL: current, Title: title, HTML: result.HTML})

		for _, link := range links {
			if scope.Contains(link) && queue.Add(NormalizeURL(link)) {
				log.Debug("Discovered page", zap.String("url", link), zap.String("from", current))
			}
		}
	}
	return pages, nil
}

// parsePage returns the page heading (first <h1>, else <title>) and every
// link on the page resolved against pageURL.
func parsePage(html string, pageURL string) (string, []string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, err
	}

	title := strings.Join(strings.Fields(doc.Find("h1").First().Text()), " ")
	if title == "" {
		title = strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", nil, err
	}
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if resolved := resolveURL(s.AttrOr("href", ""), base); resolved != "" {
			links = append(links, resolved)
		}
	})
	return title, links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "tel:") {
		return ""
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
