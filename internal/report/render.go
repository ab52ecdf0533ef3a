package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/varalys/passcheck/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PrintOptions struct {
	NoColor bool
}

var ratingColors = map[types.Rating]lipgloss.Color{
	types.RatingExcellent: lipgloss.Color("10"),
	types.RatingStrong:    lipgloss.Color("2"),
	types.RatingModerate:  lipgloss.Color("3"),
	types.RatingWeak:      lipgloss.Color("208"),
	types.RatingVeryWeak:  lipgloss.Color("1"),
}

// PrintText writes the human-readable summary of r.
func PrintText(w io.Writer, r types.Report, opts PrintOptions) {
	rating := string(r.Rating)
	if !opts.NoColor {
		rating = colorRating(r.Rating)
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "Rating: %s (%s / 100)\n", rating, FormatFloat(r.Score))
	fmt.Fprintf(w, "Entropy: %s bits | Charset size: %d | Length: %d\n", FormatFloat(r.EntropyBits), r.CharsetSize, r.Length)
	fmt.Fprintf(w, "Estimated time to crack (all combos @ %s/s): %s\n", FormatFloat(r.GuessesPerSecond), r.TimeToCrackReadable)
	if r.ZxcvbnScore != nil {
		fmt.Fprintf(w, "zxcvbn: %d / 4 (crack time %s)\n", *r.ZxcvbnScore, r.ZxcvbnCrackTime)
	}
	for _, line := range Warnings(r) {
		fmt.Fprintln(w, line)
	}
}

// Warnings returns the alert lines for the flags set on r.
func Warnings(r types.Report) []string {
	var out []string
	if r.WordMatch() {
		out = append(out, "WARNING: dictionary/common password detected.")
	}
	if r.PatternDetected() {
		out = append(out, "Pattern detected: repeated/sequence/keyboard pattern.")
	}
	if r.Breached {
		out = append(out, "BREACHED: Exact match in provided breached list.")
	}
	return out
}

func colorRating(r types.Rating) string {
	c, ok := ratingColors[r]
	if !ok {
		return string(r)
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r))
}

// FormatNumber prints v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// FormatFloat prints v the way the text report always has: the shortest
// decimal that round-trips, with a trailing ".0" for whole numbers and
// exponent notation below 1e-4 or from 1e16 up ("100.0", "1000000000.0",
// "1e+16").
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

var printer = message.NewPrinter(language.English)

// FormatRate prints a guess rate with thousands separators, for tables and
// Markdown.
func FormatRate(v float64) string {
	if v == math.Trunc(v) && v < 1e18 {
		return printer.Sprintf("%d", int64(v))
	}
	if v >= 1e18 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return printer.Sprintf("%.2f", v)
}
