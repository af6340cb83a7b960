package urlhandler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected string
		wantErr  bool
	}{
		{
			name:     "adds http scheme when missing",
			inputURL: "example.com",
			expected: "http://example.com",
		},
		{
			name:     "keeps https scheme",
			inputURL: "https://example.com/page",
			expected: "https://example.com/page",
		},
		{
			name:     "lowercases host",
			inputURL: "https://EXAMPLE.com/Page",
			expected: "https://example.com/Page",
		},
		{
			name:     "trims surrounding whitespace",
			inputURL: "  http://example.com  ",
			expected: "http://example.com",
		},
		{
			name:     "rejects empty input",
			inputURL: "   ",
			wantErr:  true,
		},
		{
			name:     "rejects scheme without host",
			inputURL: "http://",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeURL(tt.inputURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://tool.example/backlink-maker/")
	require.NoError(t, err)

	tests := []struct {
		name     string
		href     string
		base     *url.URL
		expected string
		wantErr  bool
	}{
		{
			name:     "absolute href ignores base",
			href:     "https://found.example/abc",
			base:     base,
			expected: "https://found.example/abc",
		},
		{
			name:     "relative href resolves against base",
			href:     "results",
			base:     base,
			expected: "https://tool.example/backlink-maker/results",
		},
		{
			name:     "root-relative href resolves against host",
			href:     "/report",
			base:     base,
			expected: "https://tool.example/report",
		},
		{
			name:    "relative href without base fails",
			href:    "results",
			base:    nil,
			wantErr: true,
		},
		{
			name:    "empty href fails",
			href:    "",
			base:    base,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveURL(tt.href, tt.base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsHTTPScheme(t *testing.T) {
	assert.True(t, IsHTTPScheme("http://example.com"))
	assert.True(t, IsHTTPScheme("https://example.com"))
	assert.False(t, IsHTTPScheme("mailto:user@example.com"))
	assert.False(t, IsHTTPScheme("javascript:void(0)"))
	assert.False(t, IsHTTPScheme("ftp://example.com"))
}

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		expected string
	}{
		{name: "plain domain", hostname: "example.com", expected: "example.com"},
		{name: "subdomain", hostname: "www.example.com", expected: "example.com"},
		{name: "two-part TLD", hostname: "sub.example.co.uk", expected: "example.co.uk"},
		{name: "hostname with port", hostname: "example.com:8080", expected: "example.com"},
		{name: "single label", hostname: "localhost", expected: "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			domain, err := BaseDomain(tt.hostname)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, domain)
		})
	}
}

func TestSameBaseDomain(t *testing.T) {
	assert.True(t, SameBaseDomain("https://www.tool.example.com/a", "http://tool.example.com/b"))
	assert.True(t, SameBaseDomain("https://a.example.com", "https://b.example.com"))
	assert.False(t, SameBaseDomain("https://example.com", "https://example.org"))
	assert.False(t, SameBaseDomain("", "https://example.org"))
}
