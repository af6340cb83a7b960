package models

import "strings"

// Target is one user-supplied URL to submit to every enabled tool.
// Targets are immutable for the duration of a run.
type Target struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords,omitempty"`
}

// NewTarget creates a target from a raw URL and an optional comma-separated
// keyword string.
func NewTarget(rawURL string, keywords string) Target {
	return Target{
		URL:      strings.TrimSpace(rawURL),
		Keywords: SplitKeywords(keywords),
	}
}

// SplitKeywords splits a comma-separated keyword string into trimmed,
// non-empty keywords.
func SplitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// JoinedKeywords returns the keywords as a single comma-joined string,
// the form expected by keyword input fields.
func (t Target) JoinedKeywords() string {
	return strings.Join(t.Keywords, ", ")
}
