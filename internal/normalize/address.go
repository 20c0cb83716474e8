package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultAbbrevs maps lowercase street-type abbreviations to their expansion.
// Keys are matched per token, case-insensitively, with a trailing period
// stripped first.
var defaultAbbrevs = map[string]string{
	"st":   "Street",
	"ave":  "Avenue",
	"rd":   "Road",
	"dr":   "Drive",
	"ln":   "Lane",
	"blvd": "Boulevard",
	"ct":   "Court",
	"pl":   "Place",
	"apt":  "Apartment",
}

// Addresser expands street-type abbreviations and title-cases address tokens.
// The abbreviation table is fixed at construction and never mutated, so a
// single Addresser is safe for concurrent use.
type Addresser struct {
	abbrevs map[string]string
}

// NewAddresser returns an Addresser using the default abbreviation table
// merged with extra entries. Extra keys are lowercased; an extra entry for
// an existing key overrides the default expansion. Expansions are
// title-cased on substitution like any other token.
func NewAddresser(extra map[string]string) *Addresser {
	abbrevs := make(map[string]string, len(defaultAbbrevs)+len(extra))
	for k, v := range defaultAbbrevs {
		abbrevs[k] = v
	}
	for k, v := range extra {
		abbrevs[strings.ToLower(k)] = v
	}
	return &Addresser{abbrevs: abbrevs}
}

var defaultAddresser = NewAddresser(nil)

// NormalizeAddress normalizes with the default abbreviation table.
func NormalizeAddress(v *string) *string {
	return defaultAddresser.Normalize(v)
}

// Normalize trims the input, expands recognized street-type abbreviations,
// and title-cases every token. Tokens are rejoined with single spaces, so
// runs of whitespace collapse. Returns nil if the input is nil or empty
// after trimming. The result is a fixed point: normalizing it again yields
// the same string.
func (a *Addresser) Normalize(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		key := strings.ToLower(strings.TrimSuffix(tok, "."))
		if full, ok := a.abbrevs[key]; ok {
			tok = full
		}
		// Title-casing applies whether or not the token was expanded, so
		// expansions with unconventional casing still come out uniform.
		tokens[i] = titleCase(tok)
	}

	out := strings.Join(tokens, " ")
	return &out
}

// titleCase uppercases the first letter and lowercases the rest.
// A no-op for tokens that start with a digit or symbol.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
