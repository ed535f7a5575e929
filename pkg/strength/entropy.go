package strength

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"math"
	"unicode/utf8"
)

// GuessesPerSecond is the speed assumed for the brute force attacker.
const GuessesPerSecond = 1_500_000

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
	year   = 365 * day
)

// Keyspace is the sum of the sizes of the character classes present in the password.
func Keyspace(password string) int {
	return Classes(password).Size()
}

// Entropy is log2(keyspace) times the password length, in bits. A password
// without any recognized character has no entropy.
func Entropy(password string) float64 {
	keyspace := Keyspace(password)
	if keyspace == 0 {
		return 0
	}

	return math.Log2(float64(keyspace)) * float64(utf8.RuneCountInString(password))
}

// CrackSeconds estimates how long trying the whole keyspace would take. This
// is a naive uniform brute force model: dictionary and rule based attacks are
// not taken into account, so the number is an approximation and never a
// guarantee. The result is +Inf when it does not fit in a float64.
func CrackSeconds(password string) float64 {
	if Keyspace(password) == 0 {
		return 0
	}

	return math.Exp2(Entropy(password)) / GuessesPerSecond
}

// EstimateCrackTime is CrackSeconds in a human readable form.
func EstimateCrackTime(password string) string {
	return FormatDuration(CrackSeconds(password))
}

// FormatDuration renders seconds in the largest unit that fits, up to years,
// rounded to the nearest whole unit.
func FormatDuration(seconds float64) string {
	switch {
	case math.IsInf(seconds, 1):
		return "more than a googol years"
	case seconds < 1:
		return "less than 1 second"
	case seconds < minute:
		return formatUnit(seconds, "second")
	case seconds < hour:
		return formatUnit(seconds/minute, "minute")
	case seconds < day:
		return formatUnit(seconds/hour, "hour")
	case seconds < year:
		return formatUnit(seconds/day, "day")
	default:
		return formatUnit(seconds/year, "year")
	}
}

func formatUnit(value float64, unit string) string {
	rounded := math.Round(value)
	if rounded != 1 {
		unit += "s"
	}

	p := message.NewPrinter(language.English)
	if rounded < math.MaxInt64 {
		return p.Sprintf("%d %s", int64(rounded), unit)
	}

	return p.Sprintf("%.0f %s", rounded, unit)
}
