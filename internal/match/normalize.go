package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for loose key matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and split on separators (_, -, ., spaces).
// 2. Case-fold every token to lower.
// 3. Join the tokens without separators.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "total_cents" -> ["total", "cents"]
//   - "XMLParser" -> ["xml", "parser"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" -> split before 'I'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// Index resolves loosely spelled keys to one of a fixed set of canonical names.
type Index struct {
	byNorm map[string][]string
}

// NewIndex builds an Index over names. Names sharing a normalized form are kept
// so that lookups for them can be reported as ambiguous.
func NewIndex(names []string) *Index {
	ix := &Index{byNorm: make(map[string][]string, len(names))}
	for _, name := range names {
		norm := NormalizeIdent(name)
		ix.byNorm[norm] = append(ix.byNorm[norm], name)
	}

	return ix
}

// Lookup returns the canonical name matching key after normalization.
// It reports false when nothing matches or when the match is ambiguous.
func (ix *Index) Lookup(key string) (string, bool) {
	if ix == nil {
		return "", false
	}

	names := ix.byNorm[NormalizeIdent(key)]
	if len(names) != 1 {
		return "", false
	}

	return names[0], true
}
