package extract

import (
	"regexp"
)

// termPattern compiles a case-insensitive, word-boundary-anchored pattern
// for a literal term. Go's \b only understands ASCII word characters, so
// a hint like "õpe" would never anchor; the boundary is expressed instead
// as "not preceded/followed by a letter, digit or underscore" using
// Unicode character classes.
func termPattern(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(term)
	return regexp.MustCompile(`(?i)(?:\A|[^\p{L}\p{N}_])(?:` + escaped + `)(?:[^\p{L}\p{N}_]|\z)`)
}
