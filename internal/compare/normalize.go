// internal/compare/normalize.go
//
// Text canonicalization for case/accent/whitespace-insensitive matching.
// Used both for resolving free-text player input against dataset names and
// inside the text-family comparators.

package compare

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes s for equality comparison:
// trim, lowercase, strip diacritic marks, collapse internal whitespace.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}
