package parsers

import "strings"

// IsSpace reports whether r is ASCII whitespace. Other Unicode spaces,
// such as U+00A0, are treated as part of a token.
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Fields splits s around runs of ASCII whitespace.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsSpace)
}

// TrimRight removes trailing ASCII whitespace from s.
func TrimRight(s string) string {
	return strings.TrimRightFunc(s, IsSpace)
}
