// Package engine implements the revenue projection engine: customer name
// normalization, pro-ration, baseline extraction and the month-by-month
// forecast walk.
package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// nameOverrides maps known-tricky normalized forms to their canonical
// spelling. The observed entries are identity mappings; the table exists as
// an extensibility point for future aliases.
var nameOverrides = map[string]string{
	"INTERCEMENT": "INTERCEMENT",
	"KOMECO":      "KOMECO",
	"SEBRAE":      "SEBRAE",
}

// strippedPunct lists the literal characters removed during normalization.
const strippedPunct = ".,-/"

// Normalize canonicalizes a customer name for cross-dataset matching.
// It uppercases, trims, drops combining diacritical marks, removes the
// punctuation characters '.', ',', '-', '/' and collapses whitespace runs.
// The function is pure and idempotent.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))

	// Decompose and drop combining marks for accent-insensitive matching.
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if strings.ContainsRune(strippedPunct, r) {
			continue
		}
		b.WriteRune(r)
	}

	s = strings.Join(strings.Fields(b.String()), " ")
	if canonical, ok := nameOverrides[s]; ok {
		return canonical
	}
	return s
}
