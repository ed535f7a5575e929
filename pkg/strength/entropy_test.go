package strength

import (
	"math"
	"strings"
	"testing"
)

func TestEntropy(t *testing.T) {
	if Entropy("") != 0 || CrackSeconds("") != 0 {
		t.Errorf("Empty password should have no entropy")
	}

	if Entropy("ééé") != 0 || CrackSeconds("ééé") != 0 {
		t.Errorf("Unrecognized characters should have no entropy")
	}

	if got, want := Entropy("abcd"), 4*math.Log2(26); math.Abs(got-want) > 1e-9 {
		t.Errorf("Entropy(abcd): %f, want: %f", got, want)
	}

	if got, want := Keyspace("aB3$"), 94; got != want {
		t.Errorf("Keyspace(aB3$): %d, want: %d", got, want)
	}

	// 26^4 / 1.5M
	if got, want := CrackSeconds("abcd"), math.Pow(26, 4)/GuessesPerSecond; math.Abs(got-want) > 1e-9 {
		t.Errorf("CrackSeconds(abcd): %f, want: %f", got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "less than 1 second"},
		{0.99, "less than 1 second"},
		{1, "1 second"},
		{1.4, "1 second"},
		{30.5, "31 seconds"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{150, "3 minutes"},
		{3599, "60 minutes"},
		{3600, "1 hour"},
		{7200, "2 hours"},
		{86399, "24 hours"},
		{86400, "1 day"},
		{864000, "10 days"},
		{31535999, "365 days"},
		{31536000, "1 year"},
		{31536000 * 1234, "1,234 years"},
		{math.Inf(1), "more than a googol years"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%f): %q, want: %q", tc.seconds, got, tc.want)
		}
	}

	if got := FormatDuration(1e40); !strings.HasSuffix(got, " years") {
		t.Errorf("FormatDuration(1e40): %q, should be in years", got)
	}
}

func TestEstimateCrackTime(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"", "less than 1 second"},
		{"abc", "less than 1 second"},
		// 26^6 / 1.5M = 205.9s
		{"abcdef", "3 minutes"},
		// 62^6 / 1.5M = 37867s
		{"aB3dE6", "11 hours"},
	}

	for _, tc := range cases {
		if got := EstimateCrackTime(tc.password); got != tc.want {
			t.Errorf("EstimateCrackTime(%q): %q, want: %q", tc.password, got, tc.want)
		}
	}

	if got := EstimateCrackTime(strings.Repeat("aB3$", 200)); got != "more than a googol years" {
		t.Errorf("Very long password should overflow the estimate, got %q", got)
	}
}

func TestCrackSeconds_Monotonic(t *testing.T) {
	for _, unit := range []string{"a", "A1", "aB3$", "9"} {
		previous := -1.0
		for n := 1; n <= 300; n++ {
			pw := strings.Repeat(unit, n)
			s := CrackSeconds(pw)
			if s < previous {
				t.Fatalf("CrackSeconds should not decrease with length: %q gave %g after %g", pw, s, previous)
			}
			previous = s
		}
	}
}
