package report

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varalys/passcheck/internal/audit"
	"github.com/varalys/passcheck/internal/types"
)

func sampleReport() types.Report {
	return types.Report{
		Password:            types.RedactedPassword,
		Length:              8,
		CharsetSize:         26,
		EntropyBits:         37.6,
		TimeToCrackSeconds:  218.5,
		TimeToCrackReadable: "3 minutes, 38 seconds",
		GuessesPerSecond:    1e9,
		CommonPasswordMatch: true,
		KeyboardPattern:     true,
		Breached:            true,
		Score:               0,
		Rating:              types.RatingVeryWeak,
	}
}

func TestPrintText_AllWarnings(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleReport(), PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, strings.Repeat("-", 60))
	assert.Contains(t, out, "Rating: Very Weak (0.0 / 100)")
	assert.Contains(t, out, "Entropy: 37.6 bits | Charset size: 26 | Length: 8")
	assert.Contains(t, out, "Estimated time to crack (all combos @ 1000000000.0/s): 3 minutes, 38 seconds")
	assert.Contains(t, out, "WARNING: dictionary/common password detected.")
	assert.Contains(t, out, "Pattern detected: repeated/sequence/keyboard pattern.")
	assert.Contains(t, out, "BREACHED: Exact match in provided breached list.")
}

func TestPrintText_Clean(t *testing.T) {
	r := types.Report{Length: 11, CharsetSize: 94, EntropyBits: 72.1, Score: 100, Rating: types.RatingExcellent, GuessesPerSecond: 1e9, TimeToCrackReadable: "x"}
	var buf bytes.Buffer
	PrintText(&buf, r, PrintOptions{NoColor: true})
	out := buf.String()
	assert.Contains(t, out, "Rating: Excellent (100.0 / 100)")
	assert.NotContains(t, out, "WARNING")
	assert.NotContains(t, out, "BREACHED")
	assert.NotContains(t, out, "zxcvbn")
}

func TestPrintText_Zxcvbn(t *testing.T) {
	r := sampleReport()
	score := 0
	r.ZxcvbnScore = &score
	r.ZxcvbnCrackTime = "instant"
	var buf bytes.Buffer
	PrintText(&buf, r, PrintOptions{NoColor: true})
	assert.Contains(t, buf.String(), "zxcvbn: 0 / 4 (crack time instant)")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "64.69", FormatNumber(64.68887))
	assert.Equal(t, "100", FormatNumber(100))
	assert.Equal(t, "1,000,000,000", FormatRate(1e9))
	assert.Equal(t, "10", FormatRate(10))
}

func TestFormatFloat(t *testing.T) {
	for in, want := range map[float64]string{
		100:      "100.0",
		0:        "0.0",
		64.69:    "64.69",
		23.5:     "23.5",
		1e9:      "1000000000.0",
		1e16:     "1e+16",
		1.5e20:   "1.5e+20",
		0.00001:  "1e-05",
		-2:       "-2.0",
	} {
		assert.Equal(t, want, FormatFloat(in), "%v", in)
	}
	assert.Equal(t, "inf", FormatFloat(math.Inf(1)))
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTable(&buf, sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "Very Weak")
	assert.Contains(t, out, "3 minutes, 38 seconds")
	assert.Contains(t, out, "common,keyboard,breached")
}

func TestPrintBatchTable(t *testing.T) {
	clean := types.Report{Length: 11, Score: 100, Rating: types.RatingExcellent}
	var buf bytes.Buffer
	require.NoError(t, PrintBatchTable(&buf, []types.Report{sampleReport(), clean}))
	out := buf.String()
	assert.Contains(t, out, "Very Weak")
	assert.Contains(t, out, "Excellent")
}

func TestPrintHistory(t *testing.T) {
	recs := []audit.AnalysisRecord{
		{Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), Mode: "batch", Report: sampleReport()},
		{Timestamp: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), Mode: "arg", Report: types.Report{Length: 11, Score: 100, Rating: types.RatingExcellent}},
	}
	var buf bytes.Buffer
	require.NoError(t, PrintHistory(&buf, recs))
	out := buf.String()
	assert.Contains(t, out, "batch")
	assert.Contains(t, out, "Very Weak")
	assert.Contains(t, out, "Excellent")
	assert.NotContains(t, out, types.RedactedPassword)
}

func TestFlags(t *testing.T) {
	assert.Equal(t, "-", Flags(types.Report{}))
	assert.Equal(t, "dictionary,sequence", Flags(types.Report{DictionaryMatch: true, SequenceDetected: true}))
}

func TestWriteJSON_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport(), false))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"password\": \"[REDACTED]\",\n  \"length\": 8,"), out)

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	for _, k := range []string{"length", "charset_size", "entropy_bits", "time_to_crack_seconds", "time_to_crack_readable",
		"guesses_per_second", "dictionary_match", "common_password_match", "repeated_chars", "sequence_detected",
		"keyboard_pattern", "breached", "score", "rating"} {
		assert.Contains(t, m, k)
	}
	assert.NotContains(t, m, "zxcvbn_score")
	assert.Equal(t, "Very Weak", m["rating"])
}

func TestWriteJSON_Highlight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport(), true))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "charset_size")
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "# Password Strength Report")
	assert.Contains(t, out, "[!CAUTION]")
	assert.Contains(t, out, "**Very Weak**")
	assert.Contains(t, out, "Keyboard pattern")

	buf.Reset()
	require.NoError(t, WriteMarkdown(&buf, types.Report{Rating: types.RatingExcellent, Score: 100}))
	assert.Contains(t, buf.String(), "[!TIP]")
}

func TestParseRating(t *testing.T) {
	for in, want := range map[string]types.Rating{
		"very-weak": types.RatingVeryWeak,
		"Very Weak": types.RatingVeryWeak,
		"very_weak": types.RatingVeryWeak,
		"STRONG":    types.RatingStrong,
		" moderate": types.RatingModerate,
	} {
		got, err := ParseRating(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseRating("meh")
	assert.Error(t, err)
}

func TestShouldFail(t *testing.T) {
	weak := types.Report{Rating: types.RatingWeak}
	assert.False(t, ShouldFail(weak, ""))
	assert.False(t, ShouldFail(weak, types.RatingWeak))
	assert.False(t, ShouldFail(weak, types.RatingVeryWeak))
	assert.True(t, ShouldFail(weak, types.RatingModerate))
}
