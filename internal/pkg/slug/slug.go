package slug

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[^\w\s-]`)
	separators   = regexp.MustCompile(`[-\s]+`)
)

// Make derives a URL-safe slug from a human readable name or title.
// The transform is pure and idempotent: Make(Make(x)) == Make(x).
func Make(input string) string {
	s := strings.ToLower(input)
	s = invalidChars.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
