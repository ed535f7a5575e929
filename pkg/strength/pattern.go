package strength

// IsCommonPattern reports whether the whole password has one of the shapes
// people reach for when asked for a "complex" password:
//
//	letters{3,}
//	letters{2,} digits{2,4}
//	letters{2,} symbol
//	letters{2,} digits{2,4} symbol
//	letters{2,} symbol digits{2,4}
//
// Letters are ASCII only and the match is anchored at both ends.
func IsCommonPattern(password string) bool {
	runes := []rune(password)

	letters := 0
	for letters < len(runes) && isLetter(runes[letters]) {
		letters++
	}

	if letters == len(runes) {
		return letters >= 3
	}
	if letters < 2 {
		return false
	}

	return isPatternTail(runes[letters:])
}

// isPatternTail matches what may follow the letter run: digits{2,4}, a single
// symbol, or both in either order.
func isPatternTail(tail []rune) bool {
	if isSymbol(tail[0]) {
		rest := tail[1:]
		return len(rest) == 0 || isDigitRun(rest)
	}

	digits := 0
	for digits < len(tail) && isDigit(tail[digits]) {
		digits++
	}

	switch len(tail) - digits {
	case 0:
		return isDigitRun(tail)
	case 1:
		return isDigitRun(tail[:digits]) && isSymbol(tail[digits])
	default:
		return false
	}
}

// isDigitRun is true for 2 to 4 ASCII digits and nothing else.
func isDigitRun(run []rune) bool {
	if len(run) < 2 || len(run) > 4 {
		return false
	}
	for _, r := range run {
		if !isDigit(r) {
			return false
		}
	}

	return true
}
