package tool

import (
	"strings"
	"unicode"
)

// reservedChars may not appear inside an author, name or alias segment.
// '/' separates author and name, ':' ends a provider prefix and '@' starts a version.
const reservedChars = `/\:@`

// IsInvalidIdentifier reports whether a trimmed segment is unusable as an
// author, name or alias.
func IsInvalidIdentifier(s string) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, reservedChars) {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == unicode.ReplacementChar {
			return true
		}
	}
	return false
}

// asciiLower lowercases ASCII letters only; other bytes are copied unchanged.
func asciiLower(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
