package strength

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varalys/passcheck/internal/types"
	"github.com/varalys/passcheck/internal/wordlist"
)

func newAnalyzer(t *testing.T, cfg Config) *Analyzer {
	t.Helper()
	a, err := New(cfg)
	require.NoError(t, err)
	return a
}

func TestNew_DefaultRate(t *testing.T) {
	a := newAnalyzer(t, Config{})
	assert.Equal(t, DefaultGuessesPerSecond, a.GuessesPerSecond())
}

func TestNew_RejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{-1, -1e9} {
		_, err := New(Config{GuessesPerSecond: rate})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "rate=%v", rate)
	}
}

func TestNew_RejectsBrokenWeights(t *testing.T) {
	w := DefaultWeights()
	w.EntropyCap = 0
	_, err := New(Config{Weights: &w})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	w = DefaultWeights()
	w.StrongAt = 99
	_, err = New(Config{Weights: &w})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestAnalyze_CommonPasswordIsBreached(t *testing.T) {
	a := newAnalyzer(t, Config{Common: wordlist.NewSet("password")})
	r := a.Analyze("password")
	assert.True(t, r.CommonPasswordMatch)
	assert.True(t, r.Breached)
	assert.True(t, r.KeyboardPattern)
	assert.Equal(t, 0.0, r.Score)
	assert.Equal(t, types.RatingVeryWeak, r.Rating)
}

func TestAnalyze_CaseFoldedCommonButNotBreached(t *testing.T) {
	a := newAnalyzer(t, Config{Common: wordlist.NewSet("dragon")})
	r := a.Analyze("DRAGON")
	assert.True(t, r.CommonPasswordMatch)
	assert.False(t, r.Breached, "breach compares the raw password")
}

func TestAnalyze_NoListsOnlyEntropyAndLength(t *testing.T) {
	a := newAnalyzer(t, Config{})
	r := a.Analyze("Tr0ub4dor&3")
	assert.False(t, r.DictionaryMatch)
	assert.False(t, r.CommonPasswordMatch)
	assert.False(t, r.Breached)
	assert.False(t, r.PatternDetected())
	assert.Equal(t, 11, r.Length)
	assert.Equal(t, 94, r.CharsetSize)
	assert.Equal(t, 72.1, r.EntropyBits)
	assert.Equal(t, 100.0, r.Score)
	assert.Equal(t, types.RatingExcellent, r.Rating)
}

func TestAnalyze_ScoreComposition(t *testing.T) {
	a := newAnalyzer(t, Config{})

	// 50 + 23.502/80*50, no bonus
	r := a.Analyze("hello")
	assert.Equal(t, 23.5, r.EntropyBits)
	assert.Equal(t, 64.69, r.Score)
	assert.Equal(t, types.RatingModerate, r.Rating)

	// 50 + 37.6/80*50 + 5 - 30
	r = a.Analyze("aaaaaaaa")
	assert.True(t, r.RepeatedChars)
	assert.Equal(t, 48.5, r.Score)
	assert.Equal(t, types.RatingWeak, r.Rating)
}

func TestAnalyze_PatternPenaltyIsFlat(t *testing.T) {
	a := newAnalyzer(t, Config{})
	one := a.Analyze("kkkmnpxz")  // repeated only
	all := a.Analyze("aaa1234zz") // repeated, sequence and keyboard
	require.True(t, one.RepeatedChars)
	require.True(t, all.RepeatedChars && all.SequenceDetected && all.KeyboardPattern)

	w := DefaultWeights()
	noPat := Score(EntropyBits("aaa1234zz", w), all.Length, types.Report{}, w)
	assert.InDelta(t, noPat-w.PatternPenalty, all.Score, 0.01)
}

func TestAnalyze_DictionarySubstring(t *testing.T) {
	a := newAnalyzer(t, Config{Wordlists: []wordlist.Set{wordlist.NewSet("monkey"), wordlist.NewSet("Dragon")}})
	r := a.Analyze("xXDragon99")
	assert.True(t, r.DictionaryMatch)
	assert.False(t, r.CommonPasswordMatch)

	r = a.Analyze("zebra")
	assert.False(t, r.DictionaryMatch)
}

func TestAnalyze_EmptyPassword(t *testing.T) {
	a := newAnalyzer(t, Config{})
	r := a.Analyze("")
	assert.Equal(t, 0, r.Length)
	assert.Equal(t, 1, r.CharsetSize)
	assert.Equal(t, 0.0, r.EntropyBits)
	assert.Equal(t, "0.000 seconds", r.TimeToCrackReadable)
	assert.Equal(t, 50.0, r.Score)
}

func TestAnalyze_NeverLeaksPassword(t *testing.T) {
	a := newAnalyzer(t, Config{Zxcvbn: true})
	r := a.Analyze("s3cr3t-Value")
	assert.Equal(t, types.RedactedPassword, r.Password)
	assert.NotContains(t, fmt.Sprintf("%+v", r), "s3cr3t-Value")
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	common := wordlist.NewSet("password", "123456", "qwerty", "")
	dict := wordlist.NewSet("pass", "word", "a")
	inputs := []string{"", "a", "password", "PASSWORD", "123456", "qwerty", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"Tr0ub4dor&3", "correct horse battery staple", "日本語のパスワード", string(make([]byte, 300))}
	for _, cfg := range []Config{{}, {Common: common}, {Wordlists: []wordlist.Set{dict}}, {Common: common, Wordlists: []wordlist.Set{dict}}} {
		a := newAnalyzer(t, cfg)
		for _, pw := range inputs {
			r := a.Analyze(pw)
			assert.GreaterOrEqual(t, r.Score, 0.0)
			assert.LessOrEqual(t, r.Score, 100.0)
			assert.GreaterOrEqual(t, r.CharsetSize, 1)
		}
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := newAnalyzer(t, Config{Common: wordlist.NewSet("letmein"), Zxcvbn: true})
	assert.Equal(t, a.Analyze("LetMeIn2024!"), a.Analyze("LetMeIn2024!"))
}

func TestAnalyze_CustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.PatternPenalty = 0
	a := newAnalyzer(t, Config{Weights: &w})
	r := a.Analyze("aaaaaaaa")
	assert.True(t, r.RepeatedChars)
	assert.Equal(t, 78.5, r.Score)
	assert.Equal(t, types.RatingStrong, r.Rating)

	// the analyzer keeps its own copy
	w.PatternPenalty = 100
	assert.Equal(t, 78.5, a.Analyze("aaaaaaaa").Score)
}

func TestAnalyze_Zxcvbn(t *testing.T) {
	off := newAnalyzer(t, Config{}).Analyze("password")
	assert.Nil(t, off.ZxcvbnScore)

	on := newAnalyzer(t, Config{Zxcvbn: true}).Analyze("password")
	require.NotNil(t, on.ZxcvbnScore)
	assert.Equal(t, 0, *on.ZxcvbnScore)
	assert.NotEmpty(t, on.ZxcvbnCrackTime)
	assert.Equal(t, off.Score, on.Score)
}

func TestAnalyze_ZxcvbnLongPassword(t *testing.T) {
	a := newAnalyzer(t, Config{Zxcvbn: true})
	pw := strings.Repeat("aB3$xyzQ", 625)

	start := time.Now()
	r := a.Analyze(pw)
	assert.Less(t, time.Since(start), 5*time.Second)

	assert.Equal(t, 5000, r.Length)
	require.NotNil(t, r.ZxcvbnScore)
	assert.Equal(t, *a.Analyze(pw[:zxcvbnMaxRunes]).ZxcvbnScore, *r.ZxcvbnScore)
}

func TestAnalyze_InvalidUTF8NotRepeated(t *testing.T) {
	r := newAnalyzer(t, Config{}).Analyze("\xff\xfe\xfd")
	assert.False(t, r.RepeatedChars)
	assert.False(t, r.PatternDetected())
	assert.Equal(t, 3, r.Length)
}

func TestRatingFor_Boundaries(t *testing.T) {
	w := DefaultWeights()
	cases := map[float64]types.Rating{
		100:   types.RatingExcellent,
		85:    types.RatingExcellent,
		84.99: types.RatingStrong,
		70:    types.RatingStrong,
		69.99: types.RatingModerate,
		50:    types.RatingModerate,
		49.99: types.RatingWeak,
		25:    types.RatingWeak,
		24.99: types.RatingVeryWeak,
		0:     types.RatingVeryWeak,
	}
	for score, want := range cases {
		assert.Equal(t, want, w.RatingFor(score), "score=%v", score)
	}
}

func TestAnalyzeAll_PreservesOrder(t *testing.T) {
	a := newAnalyzer(t, Config{})
	pws := []string{"a", "password", "Tr0ub4dor&3", "", "hello"}
	got, err := AnalyzeAll(context.Background(), a, pws, 2)
	require.NoError(t, err)
	require.Len(t, got, len(pws))
	for i, pw := range pws {
		assert.Equal(t, a.Analyze(pw), got[i])
	}
}

func TestAnalyzeAll_Cancelled(t *testing.T) {
	a := newAnalyzer(t, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := AnalyzeAll(ctx, a, []string{"a", "b"}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
