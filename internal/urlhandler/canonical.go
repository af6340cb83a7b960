package urlhandler

import (
	"net/url"
	"strings"
)

// Common tracking parameters stripped from canonical keys. "utm_" prefixed
// parameters are stripped regardless of suffix.
var trackingParams = map[string]bool{
	"utm":      true,
	"fbclid":   true,
	"gclid":    true,
	"msclkid":  true,
	"_ga":      true,
	"_gl":      true,
	"mc_cid":   true,
	"mc_eid":   true,
	"ref":      true,
	"referrer": true,
	"campaign": true,
	"source":   true,
	"medium":   true,
}

// CanonicalKey reduces a URL to the canonical form used as the
// deduplication identity for discovered links: lowercase scheme and host,
// default port and fragment dropped, tracking query parameters stripped,
// remaining query re-encoded in sorted order, trailing slash trimmed from
// the path. The function is idempotent.
func CanonicalKey(rawURL string) (string, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", err
	}

	parsed.Fragment = ""
	parsed.RawFragment = ""
	parsed.User = nil
	parsed.Host = stripDefaultPort(parsed.Scheme, parsed.Host)
	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	parsed.RawPath = ""

	if parsed.RawQuery != "" {
		values := parsed.Query()
		for param := range values {
			if isTrackingParam(param) {
				values.Del(param)
			}
		}
		// Encode sorts keys, which keeps the key stable across
		// query-order variations of the same URL.
		parsed.RawQuery = values.Encode()
	}

	return parsed.String(), nil
}

// CanonicalKeysEqual reports whether two URLs reduce to the same canonical
// key. Unparseable inputs compare as different.
func CanonicalKeysEqual(rawA, rawB string) bool {
	keyA, errA := CanonicalKey(rawA)
	keyB, errB := CanonicalKey(rawB)
	if errA != nil || errB != nil {
		return false
	}
	return keyA == keyB
}

func isTrackingParam(param string) bool {
	lower := strings.ToLower(param)
	if strings.HasPrefix(lower, "utm_") {
		return true
	}
	return trackingParams[lower]
}

func stripDefaultPort(scheme, host string) string {
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		return strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		return strings.TrimSuffix(host, ":443")
	}
	return host
}
