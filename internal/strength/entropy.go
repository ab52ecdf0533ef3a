package strength

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidConfiguration is returned for analysis parameters that cannot
// produce a meaningful estimate, such as a non-positive guess rate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// CharsetSize sums the alphabet sizes of the character classes present in pw.
// Anything outside ASCII letters and digits counts as a symbol. The result is
// at least 1.
func CharsetSize(pw string, w Weights) int {
	var hasL, hasU, hasD, hasS bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			hasL = true
		case r >= 'A' && r <= 'Z':
			hasU = true
		case r >= '0' && r <= '9':
			hasD = true
		default:
			hasS = true
		}
	}
	size := 0
	if hasL {
		size += w.LowerSize
	}
	if hasU {
		size += w.UpperSize
	}
	if hasD {
		size += w.DigitSize
	}
	if hasS {
		size += w.SymbolSize
	}
	if size < 1 {
		return 1
	}
	return size
}

// EntropyBits estimates keyspace entropy assuming uniform random choice from
// the detected charset. It says nothing about how random pw actually is.
func EntropyBits(pw string, w Weights) float64 {
	size := CharsetSize(pw, w)
	if size <= 1 {
		return 0
	}
	return float64(utf8.RuneCountInString(pw)) * math.Log2(float64(size))
}

// TimeToCrackSeconds returns the time needed to enumerate 2^bits guesses at
// rate guesses per second. Results too large for a float64 saturate at
// math.MaxFloat64.
func TimeToCrackSeconds(bits, rate float64) (float64, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return 0, fmt.Errorf("%w: guesses per second must be > 0, got %v", ErrInvalidConfiguration, rate)
	}
	if bits < 0 {
		bits = 0
	}
	t := math.Pow(2, bits) / rate
	if math.IsInf(t, 1) || math.IsNaN(t) {
		return math.MaxFloat64, nil
	}
	return t, nil
}

var timeUnits = []struct {
	name    string
	seconds float64
}{
	{"years", 31536000},
	{"days", 86400},
	{"hours", 3600},
	{"minutes", 60},
	{"seconds", 1},
}

// ReadableTime renders seconds using at most the two largest non-zero units,
// e.g. "3 years, 12 days". Sub-second values keep millisecond precision.
func ReadableTime(seconds float64) string {
	if seconds < 1 {
		return fmt.Sprintf("%.3f seconds", seconds)
	}
	var parts []string
	rem := seconds
	for _, u := range timeUnits {
		n := math.Floor(rem / u.seconds)
		if !(n >= 1) {
			continue
		}
		rem -= n * u.seconds
		parts = append(parts, strconv.FormatFloat(n, 'f', 0, 64)+" "+u.name)
		if len(parts) == 2 {
			break
		}
	}
	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}
