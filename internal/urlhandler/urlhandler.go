package urlhandler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeURL normalizes a URL string, ensuring it has a scheme and a
// lowercase host. Scheme-less inputs get "http://" prepended so user input
// like "example.com" is still navigable.
func NormalizeURL(rawURL string) (string, error) {
	trimmedURL := strings.TrimSpace(rawURL)
	if trimmedURL == "" {
		return "", errors.New("URL is empty or only whitespace")
	}

	if !strings.Contains(trimmedURL, "://") && !strings.HasPrefix(trimmedURL, "//") {
		trimmedURL = "http://" + trimmedURL
	}

	parsedURL, err := url.Parse(trimmedURL)
	if err != nil {
		return "", fmt.Errorf("could not parse URL '%s': %w", trimmedURL, err)
	}

	if parsedURL.Host == "" {
		return "", errors.New("URL lacks a valid hostname")
	}

	parsedURL.Scheme = strings.ToLower(parsedURL.Scheme)
	parsedURL.Host = strings.ToLower(parsedURL.Host)

	return parsedURL.String(), nil
}

// ResolveURL resolves a (possibly relative) URL string against a base URL.
// The returned URL is also normalized.
func ResolveURL(href string, base *url.URL) (string, error) {
	trimmedHref := strings.TrimSpace(href)
	if trimmedHref == "" {
		return "", fmt.Errorf("href is empty")
	}

	var resolvedURL *url.URL

	if base == nil {
		parsedHref, parseErr := url.Parse(trimmedHref)
		if parseErr != nil {
			return "", fmt.Errorf("error parsing base-less href '%s': %w", trimmedHref, parseErr)
		}
		if !parsedHref.IsAbs() {
			return "", fmt.Errorf("cannot process relative URL '%s' without a base URL", trimmedHref)
		}
		resolvedURL = parsedHref
	} else {
		resolved, resolveErr := base.Parse(trimmedHref)
		if resolveErr != nil {
			return "", fmt.Errorf("error resolving href '%s' with base '%s': %w", trimmedHref, base.String(), resolveErr)
		}
		resolvedURL = resolved
	}

	return NormalizeURL(resolvedURL.String())
}

// IsHTTPScheme reports whether the URL uses http or https.
func IsHTTPScheme(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return scheme == "http" || scheme == "https"
}

// BaseDomain extracts the registrable domain of a hostname, e.g.
// "sub.example.co.uk" -> "example.co.uk".
func BaseDomain(hostname string) (string, error) {
	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" {
		return "", errors.New("hostname is empty")
	}

	if idx := strings.LastIndex(hostname, ":"); idx != -1 && !strings.Contains(hostname[idx:], "]") {
		hostname = hostname[:idx]
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		// Single-label hosts (localhost, bare TLDs) have no eTLD+1.
		return hostname, nil
	}
	return domain, nil
}

// SameBaseDomain reports whether two URLs share a registrable domain.
// Unparseable inputs compare as different.
func SameBaseDomain(rawA, rawB string) bool {
	hostA, errA := hostOf(rawA)
	hostB, errB := hostOf(rawB)
	if errA != nil || errB != nil {
		return false
	}

	domainA, errA := BaseDomain(hostA)
	domainB, errB := BaseDomain(hostB)
	if errA != nil || errB != nil {
		return false
	}
	return domainA != "" && domainA == domainB
}

func hostOf(rawURL string) (string, error) {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}
	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", err
	}
	if parsed.Hostname() == "" {
		return "", errors.New("URL has no hostname component")
	}
	return parsed.Hostname(), nil
}
