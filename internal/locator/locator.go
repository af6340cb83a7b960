package locator

import (
	"strings"

	"github.com/go-rod/rod"
	"github.com/rs/zerolog"
)

// Role is the semantic role of a form control the locator searches for.
type Role string

const (
	RoleURLInput      Role = "url-input"
	RoleKeywordInput  Role = "keyword-input"
	RoleSubmitControl Role = "submit-control"
)

// Candidate is a snapshot of one interactive element on a page. The
// snapshot carries everything the matching heuristics need, so matching is
// decoupled from the live browser and testable without one. Handle is nil
// in tests.
type Candidate struct {
	// Index is the element's position in document order.
	Index     int
	Tag       string
	InputType string

	Name        string
	ID          string
	Placeholder string
	AriaLabel   string
	Title       string
	// Label is the text of an associated <label for=...> element, if any.
	Label string
	// Text is the visible text for buttons and links, or the value
	// attribute for input-style buttons.
	Text string

	Visible bool
	Enabled bool

	Handle *rod.Element
}

// Locator finds the best-matching control for a semantic role using an
// ordered set of heuristics. Not finding a control is an expected outcome
// against arbitrary third-party markup, so it is reported as a boolean,
// never an error.
type Locator struct {
	logger zerolog.Logger
}

// New creates a field locator.
func New(logger zerolog.Logger) *Locator {
	return &Locator{
		logger: logger.With().Str("component", "FieldLocator").Logger(),
	}
}

// Locate returns the best candidate for the role, walking the heuristic
// tiers in order: tool-specific hints first (each hint is its own tier,
// tried in listed order), then the generic role vocabulary. Within a tier,
// visible and enabled candidates win, earliest document order breaks ties.
func (l *Locator) Locate(candidates []Candidate, role Role, hints []string) (*Candidate, bool) {
	for _, hint := range hints {
		if best := pickBest(l.matching(candidates, role, []string{hint}, true)); best != nil {
			l.logger.Debug().
				Str("role", string(role)).
				Str("hint", hint).
				Int("index", best.Index).
				Msg("Located field via tool hint")
			return best, true
		}
	}

	if best := pickBest(l.matching(candidates, role, vocabulary(role), false)); best != nil {
		l.logger.Debug().
			Str("role", string(role)).
			Int("index", best.Index).
			Msg("Located field via generic vocabulary")
		return best, true
	}

	l.logger.Debug().Str("role", string(role)).Msg("No candidate matched any heuristic tier")
	return nil, false
}

// matching returns the candidates whose role-relevant attributes contain
// any of the given patterns, case-insensitively. In the generic tier,
// submit controls with a form-submit type match regardless of text; in a
// hint tier the hint itself must match, otherwise any type=submit control
// earlier in the page would shadow the hinted one.
func (l *Locator) matching(candidates []Candidate, role Role, patterns []string, hinted bool) []Candidate {
	var matches []Candidate
	for _, candidate := range candidates {
		if role == RoleSubmitControl {
			if candidate.isSubmitControl(patterns, hinted) {
				matches = append(matches, candidate)
			}
			continue
		}
		if candidate.isTextInput() && candidate.matchesInputPattern(patterns) {
			matches = append(matches, candidate)
		}
	}
	return matches
}

// pickBest prefers visible and enabled candidates, then visible, then
// enabled, then anything, with document order breaking ties inside each
// preference class.
func pickBest(matches []Candidate) *Candidate {
	best := -1
	bestRank := -1
	for i, candidate := range matches {
		rank := usabilityRank(candidate)
		if rank > bestRank {
			best = i
			bestRank = rank
		}
	}
	if best == -1 {
		return nil
	}
	picked := matches[best]
	return &picked
}

func usabilityRank(c Candidate) int {
	switch {
	case c.Visible && c.Enabled:
		return 3
	case c.Visible:
		return 2
	case c.Enabled:
		return 1
	default:
		return 0
	}
}

// isTextInput reports whether the candidate can receive typed text.
func (c Candidate) isTextInput() bool {
	switch strings.ToLower(c.Tag) {
	case "textarea":
		return true
	case "input":
		switch strings.ToLower(c.InputType) {
		case "", "text", "url", "search", "email":
			return true
		}
	}
	return false
}

// matchesInputPattern checks the candidate's accessible name, placeholder,
// label and identifying attributes against the patterns.
func (c Candidate) matchesInputPattern(patterns []string) bool {
	fields := []string{c.Name, c.ID, c.Placeholder, c.AriaLabel, c.Title, c.Label}
	return containsAny(fields, patterns)
}

// isSubmitControl reports whether the candidate is clickable and matches
// the patterns. The unconditional type=submit match applies only to the
// generic vocabulary tier; hints match against the whole normalized text
// so multi-word hints like "check backlinks" work.
func (c Candidate) isSubmitControl(patterns []string, hinted bool) bool {
	tag := strings.ToLower(c.Tag)
	inputType := strings.ToLower(c.InputType)

	clickable := tag == "button" || tag == "a" ||
		(tag == "input" && (inputType == "submit" || inputType == "button" || inputType == "image"))
	if !clickable {
		return false
	}

	fields := []string{c.Text, c.AriaLabel, c.Title, c.Name, c.ID}
	if hinted {
		return normalizedContainsAny(fields, patterns)
	}

	if inputType == "submit" {
		return true
	}
	return tokenMatchesAny(fields, patterns)
}

// tokenMatchesAny matches patterns against whole word prefixes rather than
// raw substrings, so short vocabulary entries like "go" do not match inside
// unrelated words such as "Login".
func tokenMatchesAny(fields, patterns []string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, token := range strings.Fields(normalizeWords(field)) {
			for _, pattern := range patterns {
				if pattern == "" {
					continue
				}
				if strings.HasPrefix(token, strings.ToLower(pattern)) {
					return true
				}
			}
		}
	}
	return false
}

// normalizedContainsAny collapses each field and pattern to lowercase
// space-separated word sequences before a substring check, so a pattern
// may span multiple words regardless of the markup's casing or
// punctuation.
func normalizedContainsAny(fields, patterns []string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		norm := normalizeWords(field)
		if norm == "" {
			continue
		}
		for _, pattern := range patterns {
			p := normalizeWords(pattern)
			if p == "" {
				continue
			}
			if strings.Contains(norm, p) {
				return true
			}
		}
	}
	return false
}

func normalizeWords(s string) string {
	return strings.Join(strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}), " ")
}

func containsAny(fields, patterns []string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		lower := strings.ToLower(field)
		for _, pattern := range patterns {
			if pattern == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(pattern)) {
				return true
			}
		}
	}
	return false
}
