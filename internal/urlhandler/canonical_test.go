package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
		expected string
	}{
		{
			name:     "strips utm parameter",
			inputURL: "https://found.example/abc?utm=1",
			expected: "https://found.example/abc",
		},
		{
			name:     "strips utm_ prefixed parameters",
			inputURL: "https://example.com/page?utm_source=x&utm_medium=y",
			expected: "https://example.com/page",
		},
		{
			name:     "keeps non-tracking parameters sorted",
			inputURL: "https://example.com/page?b=2&a=1&gclid=abc",
			expected: "https://example.com/page?a=1&b=2",
		},
		{
			name:     "trims trailing slash",
			inputURL: "https://example.com/path/",
			expected: "https://example.com/path",
		},
		{
			name:     "lowercases scheme and host",
			inputURL: "HTTPS://Example.COM/Path",
			expected: "https://example.com/Path",
		},
		{
			name:     "drops fragment",
			inputURL: "https://example.com/page#section",
			expected: "https://example.com/page",
		},
		{
			name:     "strips default http port",
			inputURL: "http://example.com:80/page",
			expected: "http://example.com/page",
		},
		{
			name:     "strips default https port",
			inputURL: "https://example.com:443/page",
			expected: "https://example.com/page",
		},
		{
			name:     "keeps non-default port",
			inputURL: "http://example.com:8080/page",
			expected: "http://example.com:8080/page",
		},
		{
			name:     "adds scheme to bare host",
			inputURL: "example.com",
			expected: "http://example.com",
		},
		{
			name:     "bare host equals host with trailing slash",
			inputURL: "http://example.com/",
			expected: "http://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := CanonicalKey(tt.inputURL)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, key)
		})
	}
}

func TestCanonicalKey_Idempotent(t *testing.T) {
	inputs := []string{
		"https://found.example/abc?utm=1",
		"http://Example.com:80/Path/?b=2&a=1#frag",
		"example.com/page/",
		"https://sub.example.co.uk/deep/path?id=7&utm_campaign=x",
	}

	for _, input := range inputs {
		once, err := CanonicalKey(input)
		require.NoError(t, err, "first pass for %q", input)

		twice, err := CanonicalKey(once)
		require.NoError(t, err, "second pass for %q", input)

		assert.Equal(t, once, twice, "CanonicalKey must be idempotent for %q", input)
	}
}

func TestCanonicalKey_InvalidInput(t *testing.T) {
	_, err := CanonicalKey("   ")
	assert.Error(t, err)
}

func TestCanonicalKeysEqual(t *testing.T) {
	assert.True(t, CanonicalKeysEqual("https://found.example/abc?utm=1", "https://found.example/abc"))
	assert.True(t, CanonicalKeysEqual("example.com", "http://example.com/"))
	assert.False(t, CanonicalKeysEqual("https://a.example/x", "https://b.example/x"))
	assert.False(t, CanonicalKeysEqual("", "https://a.example/x"))
}
