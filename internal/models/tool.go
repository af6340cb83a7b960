package models

import (
	"net/url"
	"strings"
)

// Tool describes one external backlink tool site. Tools are static
// configuration data created at startup and never mutated afterwards.
type Tool struct {
	// ID is a short identifier for the tool, derived from the hostname
	// when not set explicitly in configuration.
	ID string `json:"id"`
	// URL is the tool's entry page.
	URL string `json:"url"`
	// AcceptsKeywords indicates the tool has a keyword field worth filling.
	// Absence of the field at runtime is tolerated either way.
	AcceptsKeywords bool `json:"accepts_keywords"`
	// URLInputHints, KeywordInputHints and SubmitHints are tool-specific
	// locator patterns tried before the generic vocabulary, in listed order.
	URLInputHints     []string `json:"url_input_hints,omitempty"`
	KeywordInputHints []string `json:"keyword_input_hints,omitempty"`
	SubmitHints       []string `json:"submit_hints,omitempty"`
}

// DeriveToolID builds a stable identifier from a tool URL, e.g.
// "https://smallseotools.com/backlink-maker/" -> "smallseotools.com".
func DeriveToolID(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return strings.TrimSpace(rawURL)
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}
