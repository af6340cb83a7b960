package locator

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocator() *Locator {
	return New(zerolog.Nop())
}

func TestLocate_URLInputByVocabulary(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		wantIndex  int
		wantFound  bool
	}{
		{
			name: "matches placeholder",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "text", Placeholder: "Enter your URL", Visible: true, Enabled: true},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "matches name attribute",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "text", Name: "comment", Visible: true, Enabled: true},
				{Index: 1, Tag: "input", InputType: "text", Name: "website_address", Visible: true, Enabled: true},
			},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name: "matches label text",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "text", Label: "Your domain", Visible: true, Enabled: true},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "textarea matches too",
			candidates: []Candidate{
				{Index: 0, Tag: "textarea", Name: "links", Visible: true, Enabled: true},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "ignores non-text input types",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "checkbox", Name: "url_agree", Visible: true, Enabled: true},
			},
			wantFound: false,
		},
		{
			name: "no match on unrelated fields",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "text", Name: "email", Visible: true, Enabled: true},
			},
			wantFound: false,
		},
	}

	l := newTestLocator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, ok := l.Locate(tt.candidates, RoleURLInput, nil)
			if !tt.wantFound {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantIndex, found.Index)
		})
	}
}

func TestLocate_PrefersVisibleEnabled(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "text", Name: "url", Visible: false, Enabled: false},
		{Index: 1, Tag: "input", InputType: "text", Name: "url", Visible: true, Enabled: true},
	}

	found, ok := newTestLocator().Locate(candidates, RoleURLInput, nil)
	require.True(t, ok)
	assert.Equal(t, 1, found.Index, "visible and enabled candidate must win over hidden/disabled")
}

func TestLocate_DocumentOrderBreaksTies(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "text", Name: "website", Visible: true, Enabled: true},
		{Index: 1, Tag: "input", InputType: "text", Name: "url", Visible: true, Enabled: true},
	}

	found, ok := newTestLocator().Locate(candidates, RoleURLInput, nil)
	require.True(t, ok)
	assert.Equal(t, 0, found.Index)
}

func TestLocate_HintsBeforeVocabulary(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "text", Name: "url", Visible: true, Enabled: true},
		{Index: 1, Tag: "input", InputType: "text", Name: "seite", Visible: true, Enabled: true},
	}

	// The tool hint targets the second input even though the first one
	// matches the generic vocabulary.
	found, ok := newTestLocator().Locate(candidates, RoleURLInput, []string{"seite"})
	require.True(t, ok)
	assert.Equal(t, 1, found.Index)
}

func TestLocate_HintOrderWins(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "text", Name: "secondary", Visible: true, Enabled: true},
		{Index: 1, Tag: "input", InputType: "text", Name: "primary", Visible: true, Enabled: true},
	}

	found, ok := newTestLocator().Locate(candidates, RoleURLInput, []string{"primary", "secondary"})
	require.True(t, ok)
	assert.Equal(t, 1, found.Index, "first listed hint must win regardless of document order")
}

func TestLocate_KeywordInput(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "text", Name: "url", Visible: true, Enabled: true},
		{Index: 1, Tag: "input", InputType: "text", Placeholder: "keywords, comma separated", Visible: true, Enabled: true},
	}

	found, ok := newTestLocator().Locate(candidates, RoleKeywordInput, nil)
	require.True(t, ok)
	assert.Equal(t, 1, found.Index)
}

func TestLocate_SubmitControl(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Candidate
		wantIndex  int
		wantFound  bool
	}{
		{
			name: "button with matching text",
			candidates: []Candidate{
				{Index: 0, Tag: "button", Text: "Check Backlinks", Visible: true, Enabled: true},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "input type submit matches without text",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "submit", Visible: true, Enabled: true},
			},
			wantIndex: 0,
			wantFound: true,
		},
		{
			name: "input type button needs matching value text",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "button", Text: "Cancel", Visible: true, Enabled: true},
				{Index: 1, Tag: "input", InputType: "button", Text: "Generate", Visible: true, Enabled: true},
			},
			wantIndex: 1,
			wantFound: true,
		},
		{
			name: "plain text input is not a submit control",
			candidates: []Candidate{
				{Index: 0, Tag: "input", InputType: "text", Name: "submit_url", Visible: true, Enabled: true},
			},
			wantFound: false,
		},
		{
			name: "no clickable control",
			candidates: []Candidate{
				{Index: 0, Tag: "button", Text: "Login", Visible: true, Enabled: true},
			},
			wantFound: false,
		},
	}

	l := newTestLocator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, ok := l.Locate(tt.candidates, RoleSubmitControl, nil)
			if !tt.wantFound {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantIndex, found.Index)
		})
	}
}

func TestLocate_SubmitHintBeatsUnrelatedSubmitType(t *testing.T) {
	candidates := []Candidate{
		{Index: 0, Tag: "input", InputType: "submit", Text: "Subscribe", Visible: true, Enabled: true},
		{Index: 1, Tag: "button", Text: "Check Backlinks", Visible: true, Enabled: true},
	}

	// The hint must select the hinted button even though an unrelated
	// type=submit control comes first in document order.
	found, ok := newTestLocator().Locate(candidates, RoleSubmitControl, []string{"check backlinks"})
	require.True(t, ok)
	assert.Equal(t, 1, found.Index)
}

func TestLocate_MultiWordSubmitHint(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		hint      string
		wantFound bool
	}{
		{
			name:      "hint spans words in button text",
			candidate: Candidate{Index: 0, Tag: "button", Text: "Check Backlinks Now", Visible: true, Enabled: true},
			hint:      "check backlinks",
			wantFound: true,
		},
		{
			name:      "punctuation and casing are normalized",
			candidate: Candidate{Index: 0, Tag: "a", Text: "CHECK-BACKLINKS", Visible: true, Enabled: true},
			hint:      "check backlinks",
			wantFound: true,
		},
		{
			name:      "hint does not match different text",
			candidate: Candidate{Index: 0, Tag: "button", Text: "Check Plagiarism", Visible: true, Enabled: true},
			hint:      "check backlinks",
			wantFound: false,
		},
	}

	l := newTestLocator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, ok := l.Locate([]Candidate{tt.candidate}, RoleSubmitControl, []string{tt.hint})
			if !tt.wantFound {
				// The generic vocabulary tier still applies after the hint
				// misses, so only assert the hint itself did not match here.
				matches := l.matching([]Candidate{tt.candidate}, RoleSubmitControl, []string{tt.hint}, true)
				assert.Empty(t, matches)
				return
			}
			require.True(t, ok)
			assert.Equal(t, 0, found.Index)
		})
	}
}

func TestLocate_EmptyCandidates(t *testing.T) {
	_, ok := newTestLocator().Locate(nil, RoleURLInput, []string{"url"})
	assert.False(t, ok)
}
