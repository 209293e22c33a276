package bindings

import (
	"strings"
	"unicode/utf8"
)

// SanitizeText repairs a string read from foreign memory so that it is
// always valid UTF-8 on the Go side. Invalid byte sequences are replaced
// with U+FFFD rather than surfacing as an error; a broken encoding is a
// recoverable condition, never fatal.
func SanitizeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "�")
}
