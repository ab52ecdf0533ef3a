package strength

import (
	"strings"
	"unicode/utf8"
)

// Detector is a named boolean check over a password.
type Detector struct {
	ID          string
	Description string
	Match       func(pw string, w Weights) bool
}

// Detectors lists the pattern checks in report order.
var Detectors = []Detector{
	{ID: "repeated_chars", Description: "same character repeated consecutively", Match: func(pw string, w Weights) bool { return RepeatedChars(pw, w.RepeatRun) }},
	{ID: "sequence_detected", Description: "ascending run of consecutive characters", Match: func(pw string, w Weights) bool { return SequenceDetected(pw, w.SequenceRun) }},
	{ID: "keyboard_pattern", Description: "well-known keyboard or weak substring", Match: func(pw string, w Weights) bool { return KeyboardPattern(pw, w.Keyboard) }},
}

// RepeatedChars reports whether any rune occurs run or more times in a row.
// The comparison is case-sensitive. Bytes that are not valid UTF-8 are
// compared as raw bytes rather than as U+FFFD.
func RepeatedChars(pw string, run int) bool {
	if run < 1 {
		return false
	}
	var prev rune
	n := 0
	for i := 0; i < len(pw); {
		r, size := utf8.DecodeRuneInString(pw[i:])
		if r == utf8.RuneError && size == 1 {
			// negative keys never collide with a valid rune
			r = -1 - rune(pw[i])
		}
		if i > 0 && r == prev {
			n++
		} else {
			n = 1
		}
		if n >= run {
			return true
		}
		prev = r
		i += size
	}
	return false
}

// SequenceDetected reports whether pw contains run case-folded characters whose
// code points ascend by exactly one, like "abcd" or "1234". Descending runs do
// not count.
func SequenceDetected(pw string, run int) bool {
	if run < 2 {
		return false
	}
	rs := []rune(strings.ToLower(pw))
	n := 1
	for i := 1; i < len(rs); i++ {
		if rs[i]-rs[i-1] == 1 {
			n++
		} else {
			n = 1
		}
		if n >= run {
			return true
		}
	}
	return false
}

// KeyboardPattern reports whether the case-folded password contains any of
// the given weak substrings.
func KeyboardPattern(pw string, weak []string) bool {
	lower := strings.ToLower(pw)
	for _, s := range weak {
		if s != "" && strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
