package report

import (
	"fmt"
	"github.com/alvinbaena/pwd-analyst/pkg/strength"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/nbutton23/zxcvbn-go"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Band groups scores for display.
type Band int

const (
	Weak Band = iota
	Moderate
	Strong
)

var (
	strong   = color.New(color.FgHiGreen)
	moderate = color.New(color.FgHiYellow)
	weak     = color.New(color.FgHiRed)
	accent   = color.New(color.FgHiCyan)
)

var separator = strings.Repeat("-", 40)

// BandFor maps a score to its display band.
func BandFor(score int) Band {
	switch {
	case score >= 5:
		return Strong
	case score >= 3:
		return Moderate
	default:
		return Weak
	}
}

func (b Band) color() *color.Color {
	switch b {
	case Strong:
		return strong
	case Moderate:
		return moderate
	default:
		return weak
	}
}

func (b Band) String() string {
	switch b {
	case Strong:
		return "strong"
	case Moderate:
		return "moderate"
	default:
		return "weak"
	}
}

// Verdict is the one line assessment of a score.
func Verdict(score int) string {
	switch {
	case score == strength.MaxScore:
		return fmt.Sprintf("Your password is secure! Scored %d points.", score)
	case score >= 4:
		return fmt.Sprintf("Your password is moderate. Scored %d points.", score)
	default:
		return fmt.Sprintf("Your password is not secure. Scored %d points.", score)
	}
}

// SecondOpinion is the zxcvbn take on the same password.
type SecondOpinion struct {
	Score            int
	CrackTimeDisplay string
}

// MaxComparedLength is the longest password handed to zxcvbn. Its matching
// grows much faster than the password length.
const MaxComparedLength = 100

// Comparable reports whether the password is short enough for Compare.
func Comparable(password string) bool {
	return utf8.RuneCountInString(password) <= MaxComparedLength
}

// Compare runs zxcvbn on the password. Callers check Comparable first.
func Compare(password string) SecondOpinion {
	m := zxcvbn.PasswordStrength(password, nil)
	return SecondOpinion{Score: m.Score, CrackTimeDisplay: m.CrackTimeDisplay}
}

// Analysis holds everything shown for one password.
type Analysis struct {
	Password  string
	Result    strength.Result
	CrackTime string
	Opinion   *SecondOpinion
}

// Analyze evaluates the password and estimates its crack time. With compare
// set the zxcvbn second opinion is included for passwords up to
// MaxComparedLength characters.
func Analyze(password string, compare bool) Analysis {
	a := Analysis{
		Password:  password,
		Result:    strength.Evaluate(password),
		CrackTime: strength.EstimateCrackTime(password),
	}

	if compare && Comparable(password) {
		opinion := Compare(password)
		a.Opinion = &opinion
	}

	return a
}

// Render writes the analysis to w.
func Render(w io.Writer, a Analysis) error {
	var b strings.Builder

	b.WriteString("\n" + separator + "\n")
	fmt.Fprintf(&b, "Analyzing password: %s\n", strong.Sprint(a.Password))
	b.WriteString(separator + "\n")

	band := BandFor(a.Result.Score)
	b.WriteString(band.color().Sprint(Verdict(a.Result.Score)) + "\n")
	fmt.Fprintf(&b, "A simple brute force would crack your password in approximately: %s.\n",
		moderate.Sprint(a.CrackTime))

	if a.Opinion != nil {
		fmt.Fprintf(&b, "zxcvbn rates it %s with a crack time of %s.\n",
			accent.Sprintf("%d/4", a.Opinion.Score), accent.Sprint(a.Opinion.CrackTimeDisplay))
	}

	if hints := a.Result.Hints(); len(hints) > 0 {
		b.WriteString("\nImprovement hints:\n")
		for _, hint := range hints {
			fmt.Fprintf(&b, " - %s\n", hint)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ClearScreen clears the terminal when f is one. Anything else is left alone.
func ClearScreen(f *os.File) {
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return
	}

	_, _ = io.WriteString(f, "\033[H\033[2J")
}
