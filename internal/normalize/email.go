package normalize

import "strings"

// NormalizeEmail trims whitespace and lowercases the input.
// Returns nil if the input is nil or empty after trimming.
// The shape of the address is not validated; a malformed-but-present
// value passes through trimmed and lowercased.
func NormalizeEmail(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	s = strings.ToLower(s)
	return &s
}
