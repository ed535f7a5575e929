package strength

import (
	"unicode/utf8"
)

// MinLength is the shortest password that passes the length check.
const MinLength = 8

// Check identifies one of the rules a password is scored against. The order of
// the constants is the order checks run and hints are reported.
type Check int

const (
	CheckLength Check = iota
	CheckUppercase
	CheckLowercase
	CheckDigit
	CheckSymbol
	CheckPattern
)

// MaxScore is the score of a password that passes every check.
const MaxScore = int(CheckPattern) + 1

var hints = [...]string{
	CheckLength:    "password must have 8+ characters",
	CheckUppercase: "password must include an uppercase letter",
	CheckLowercase: "password must include a lowercase letter",
	CheckDigit:     "password must include a digit",
	CheckSymbol:    "password must include a symbol",
	CheckPattern:   "password follows a common pattern",
}

var names = [...]string{
	CheckLength:    "length",
	CheckUppercase: "uppercase",
	CheckLowercase: "lowercase",
	CheckDigit:     "digit",
	CheckSymbol:    "symbol",
	CheckPattern:   "pattern",
}

// Hint is the improvement suggestion shown when the check fails.
func (c Check) Hint() string {
	if c < CheckLength || c > CheckPattern {
		return ""
	}
	return hints[c]
}

func (c Check) String() string {
	if c < CheckLength || c > CheckPattern {
		return "unknown"
	}
	return names[c]
}

// composition runs the five composition checks in order and returns the ones
// that passed.
func composition(password string) [CheckPattern]bool {
	classes := Classes(password)

	return [CheckPattern]bool{
		CheckLength:    utf8.RuneCountInString(password) >= MinLength,
		CheckUppercase: classes.Has(ClassUpper),
		CheckLowercase: classes.Has(ClassLower),
		CheckDigit:     classes.Has(ClassDigit),
		CheckSymbol:    classes.Has(ClassSymbol),
	}
}
