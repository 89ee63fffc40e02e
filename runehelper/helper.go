package runehelper

import (
	"unicode"
	"unicode/utf8"
)

func IsLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func IsDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' ||
		ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

func IsIdentifierLetter(ch rune) bool {
	return ch == '_' || IsLetter(ch)
}

func IsIdentifier(ch rune) bool {
	return IsIdentifierLetter(ch) || IsDigit(ch)
}

func IsIdentifierRunes(s []rune) bool {
	if len(s) == 0 || !IsIdentifierLetter(s[0]) {
		return false
	}
	for _, r := range s[1:] {
		if !IsIdentifier(r) {
			return false
		}
	}
	return true
}

// IsIdentifierByte reports whether b continues an ASCII identifier.
func IsIdentifierByte(b byte) bool {
	return b == '_' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z' ||
		'0' <= b && b <= '9'
}

// IsIdentifierStartByte reports whether b can start an ASCII identifier.
func IsIdentifierStartByte(b byte) bool {
	return b == '_' ||
		'a' <= b && b <= 'z' ||
		'A' <= b && b <= 'Z'
}

func IsSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// IsSpaceByte is IsSpace for a single byte of input.
func IsSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func IsDigitByte(b byte) bool {
	return '0' <= b && b <= '9'
}
