package strength

import (
	"strings"
)

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	// Symbols is the ASCII punctuation set, 32 characters.
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ClassSet is the set of character classes present in a password.
type ClassSet uint8

const (
	ClassUpper ClassSet = 1 << iota
	ClassLower
	ClassDigit
	ClassSymbol
)

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSymbol(r rune) bool {
	return r < 0x80 && strings.ContainsRune(Symbols, r)
}

// Classes scans the password once and returns every recognized class in it.
// Characters outside the four classes are ignored.
func Classes(password string) ClassSet {
	var set ClassSet
	for _, r := range password {
		switch {
		case isUpper(r):
			set |= ClassUpper
		case isLower(r):
			set |= ClassLower
		case isDigit(r):
			set |= ClassDigit
		case isSymbol(r):
			set |= ClassSymbol
		}
	}

	return set
}

func (s ClassSet) Has(c ClassSet) bool {
	return s&c == c
}

// Size is the number of distinct characters a brute force has to try per position.
func (s ClassSet) Size() int {
	size := 0
	if s.Has(ClassUpper) {
		size += len(Uppercase)
	}
	if s.Has(ClassLower) {
		size += len(Lowercase)
	}
	if s.Has(ClassDigit) {
		size += len(Digits)
	}
	if s.Has(ClassSymbol) {
		size += len(Symbols)
	}

	return size
}
