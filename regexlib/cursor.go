package regexlib

import "unicode/utf8"

// uncons splits off the first character of s. ok is false when s is empty.
// Invalid UTF-8 yields utf8.RuneError and consumes one byte.
func uncons(s string) (r rune, rest string, ok bool) {
	if len(s) == 0 {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(s)
	return r, s[size:], true
}
