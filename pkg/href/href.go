package href

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/cuemby/hutch/pkg/apierr"
	"github.com/cuemby/hutch/pkg/types"
)

// The alternatives are ordered: a mid-path /vN.N/ segment wins over a
// trailing /vN.N, matching how versioned hrefs are actually produced.
var (
	leadingVersionRe  = regexp.MustCompile(`^/v[0-9]+\.[0-9]+(/|$)`)
	innerVersionRe    = regexp.MustCompile(`/v[0-9]+\.[0-9]+/`)
	trailingVersionRe = regexp.MustCompile(`/v[0-9]+\.[0-9]+$`)
	versionNumberRe   = regexp.MustCompile(`v([0-9]+)\.([0-9]+)`)
)

// ExtractTrailingID returns the last non-empty path segment of a URL.
//
// Given "http://host/bar/123?q=4" it returns "123".
func ExtractTrailingID(href string) (string, error) {
	parsed, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("failed to parse href %q: %w", href, err)
	}
	segments := strings.Split(parsed.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i], nil
		}
	}
	return "", nil
}

// StripVersion removes the leading API version segment from a URL.
//
// Given "http://host/v1.1/123" it returns "http://host/123". The segment
// must be present at the start of the path; otherwise a VersionNotFoundError
// is returned, so stripping an already-stripped href fails rather than
// passing through.
func StripVersion(href string) (string, error) {
	parsed, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("failed to parse href %q: %w", href, err)
	}

	newPath := leadingVersionRe.ReplaceAllString(parsed.Path, "$1")
	if newPath == parsed.Path {
		return "", &apierr.VersionNotFoundError{Href: href}
	}

	parsed.Path = newPath
	return parsed.String(), nil
}

// ParseVersion returns the API version carried in a URL path. It looks for
// a /vN.N/ segment anywhere in the path, then for a trailing /vN.N, and
// defaults to 1.0 when neither is present.
func ParseVersion(href string) types.Version {
	match := innerVersionRe.FindString(href)
	if match == "" {
		match = trailingVersionRe.FindString(href)
	}
	if match == "" {
		return types.V10
	}

	nums := versionNumberRe.FindStringSubmatch(match)
	major, _ := strconv.Atoi(nums[1])
	minor, _ := strconv.Atoi(nums[2])
	return types.Version{Major: major, Minor: minor}
}
