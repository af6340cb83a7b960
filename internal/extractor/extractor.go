package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/linkmill/linkmill/internal/config"
	"github.com/linkmill/linkmill/internal/urlhandler"
)

// urlTokenRegex matches bare http(s) URL tokens inside page text. Results
// pages of some tools print discovered links as plain text rather than
// anchors.
var urlTokenRegex = regexp.MustCompile(`https?://[^\s"'<>()\[\]{}]+`)

// Extractor scans post-submission pages for candidate backlink URLs.
// This is a best-effort scrape against uncontrolled markup: no guarantee
// of completeness, and a zero-link result is a valid outcome.
type Extractor struct {
	config config.ExtractorConfig
	logger zerolog.Logger
}

// New creates a result extractor.
func New(cfg config.ExtractorConfig, logger zerolog.Logger) *Extractor {
	return &Extractor{
		config: cfg,
		logger: logger.With().Str("component", "ResultExtractor").Logger(),
	}
}

// ExtractLinks returns the candidate link URLs found in one page's HTML,
// in document order, deduplicated. Links on the tool's own domain, the
// submitted target itself and non-http(s) schemes are discarded.
func (e *Extractor) ExtractLinks(pageHTML, pageURL, targetURL string) []string {
	// Without the page URL the self-domain filter cannot run and the
	// tool's own links would pass as discoveries, so the page is skipped.
	if pageURL == "" {
		e.logger.Debug().Msg("Page URL unknown, skipping page")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		e.logger.Debug().Err(err).Str("page_url", pageURL).Msg("Failed to parse page HTML")
		return nil
	}

	var base *url.URL
	if normalized, err := urlhandler.NormalizeURL(pageURL); err == nil {
		base, _ = url.Parse(normalized)
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	var links []string

	appendLink := func(raw string) {
		if e.config.MaxLinksPerPage > 0 && len(links) >= e.config.MaxLinksPerPage {
			return
		}
		resolved, ok := e.resolveCandidate(raw, base, pageURL, targetURL)
		if !ok {
			return
		}
		key, err := urlhandler.CanonicalKey(resolved)
		if err != nil || !seen.Add(key) {
			return
		}
		links = append(links, resolved)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			appendLink(href)
		}
	})

	if e.config.ScanTextContent {
		for _, token := range urlTokenRegex.FindAllString(doc.Text(), -1) {
			appendLink(strings.TrimRight(token, ".,;:"))
		}
	}

	e.logger.Debug().
		Str("page_url", pageURL).
		Int("links", len(links)).
		Msg("Extracted candidate links")
	return links
}

// resolveCandidate turns one raw href or text token into an absolute URL
// and applies the noise filters.
func (e *Extractor) resolveCandidate(raw string, base *url.URL, pageURL, targetURL string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return "", false
		}
	}

	resolved, err := urlhandler.ResolveURL(trimmed, base)
	if err != nil {
		return "", false
	}
	if !urlhandler.IsHTTPScheme(resolved) {
		return "", false
	}

	// The tool's own pages are not discoveries.
	if pageURL != "" && urlhandler.SameBaseDomain(resolved, pageURL) {
		return "", false
	}
	// Neither is the tool echoing the submitted target back.
	if targetURL != "" && urlhandler.CanonicalKeysEqual(resolved, targetURL) {
		return "", false
	}

	return resolved, true
}
