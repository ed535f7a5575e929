// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

// Result is the outcome of evaluating a password.
type Result struct {
	// Score counts the passed checks, 0 to MaxScore.
	Score int
	// Failed holds the checks that did not pass, in check order.
	Failed []Check
}

// Hints returns one improvement suggestion per failed check, in check order.
func (r Result) Hints() []string {
	hints := make([]string, 0, len(r.Failed))
	for _, c := range r.Failed {
		hints = append(hints, c.Hint())
	}

	return hints
}

// Passed reports whether the given check passed.
func (r Result) Passed(check Check) bool {
	for _, c := range r.Failed {
		if c == check {
			return false
		}
	}

	return true
}

// Evaluate scores a password against the composition checks followed by the
// common pattern check. Any string is accepted, including the empty one.
func Evaluate(password string) Result {
	var res Result

	for c, ok := range composition(password) {
		res.record(Check(c), ok)
	}
	res.record(CheckPattern, !IsCommonPattern(password))

	return res
}

func (r *Result) record(check Check, passed bool) {
	if passed {
		r.Score++
		return
	}

	r.Failed = append(r.Failed, check)
}
