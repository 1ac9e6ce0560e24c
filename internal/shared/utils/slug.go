package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonSlugChars   = regexp.MustCompile(`[^\w-]+`)
	hyphenRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug turns free text into a URL-safe slug:
// "My Book Shop!" -> "my-book-shop".
//
// Pure and deterministic. It makes no uniqueness guarantee; the
// shops.slug unique constraint is the sole arbiter and callers must
// translate a violation into a user-facing conflict, never retry
// with a suffix. Empty output means the input had no usable
// characters and must fail validation upstream.
func GenerateSlug(input string) string {
	slug := strings.ToLower(input)

	// Whitespace runs become a single hyphen
	slug = whitespaceRuns.ReplaceAllString(slug, "-")

	// Drop everything that is not a word character or hyphen
	slug = nonSlugChars.ReplaceAllString(slug, "")

	// Collapse hyphen runs, trim the edges
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return slug
}
