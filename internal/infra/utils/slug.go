package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// IsSlug reports whether s is safe for use as a storage key or URL segment.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Slugify lowers s and replaces every run of non-alphanumeric characters
// with a single dash, trimming leading and trailing dashes.
//
// Examples:
//   - "Travel Plans" -> "travel-plans"
//   - "Côte d'Azur 2024" -> "c-te-d-azur-2024"
func Slugify(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	previousDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLower(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			previousDash = false
		case !previousDash && result.Len() > 0:
			result.WriteRune('-')
			previousDash = true
		}
	}

	return strings.TrimRight(result.String(), "-")
}
