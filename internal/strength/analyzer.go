package strength

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/varalys/passcheck/internal/types"
	"github.com/varalys/passcheck/internal/wordlist"
)

// Config holds the parameters of an analysis run.
type Config struct {
	// GuessesPerSecond is the assumed brute-force rate. Zero selects
	// DefaultGuessesPerSecond; negative values are rejected.
	GuessesPerSecond float64
	Wordlists        []wordlist.Set
	Common           wordlist.Set
	// Weights overrides the scoring constants; nil selects DefaultWeights.
	Weights *Weights
	// Zxcvbn adds a zxcvbn second opinion to each report.
	Zxcvbn bool
}

// Analyzer scores passwords against a fixed configuration. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	rate    float64
	weights Weights
	dict    wordlist.Set
	common  wordlist.Set
	breach  breachIndex
	zxcvbn  bool
}

// New validates cfg and prepares an Analyzer.
func New(cfg Config) (*Analyzer, error) {
	rate := cfg.GuessesPerSecond
	if rate == 0 {
		rate = DefaultGuessesPerSecond
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return nil, fmt.Errorf("%w: guesses per second must be > 0, got %v", ErrInvalidConfiguration, cfg.GuessesPerSecond)
	}
	w := DefaultWeights()
	if cfg.Weights != nil {
		w = *cfg.Weights
		w.Keyboard = append([]string(nil), cfg.Weights.Keyboard...)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		rate:    rate,
		weights: w,
		dict:    wordlist.Merge(cfg.Wordlists...),
		common:  cfg.Common,
		breach:  newBreachIndex(cfg.Common),
		zxcvbn:  cfg.Zxcvbn,
	}, nil
}

// GuessesPerSecond returns the rate used for crack-time estimates.
func (a *Analyzer) GuessesPerSecond() float64 { return a.rate }

// Weights returns a copy of the scoring constants.
func (a *Analyzer) Weights() Weights {
	w := a.weights
	w.Keyboard = append([]string(nil), a.weights.Keyboard...)
	return w
}

// Analyze builds a Report for pw. It accepts any string, including the empty
// one, and never fails.
func (a *Analyzer) Analyze(pw string) types.Report {
	w := a.weights
	bits := EntropyBits(pw, w)
	// the rate was validated in New
	secs, _ := TimeToCrackSeconds(bits, a.rate)

	r := types.Report{
		Password:            types.RedactedPassword,
		Length:              utf8.RuneCountInString(pw),
		CharsetSize:         CharsetSize(pw, w),
		EntropyBits:         round2(bits),
		TimeToCrackSeconds:  secs,
		TimeToCrackReadable: ReadableTime(secs),
		GuessesPerSecond:    a.rate,
		DictionaryMatch:     DictionaryMatch(pw, a.dict),
		CommonPasswordMatch: CommonPasswordMatch(pw, a.common),
		RepeatedChars:       RepeatedChars(pw, w.RepeatRun),
		SequenceDetected:    SequenceDetected(pw, w.SequenceRun),
		KeyboardPattern:     KeyboardPattern(pw, w.Keyboard),
		Breached:            a.breach.breached(pw),
	}
	r.Score = round2(Score(bits, r.Length, r, w))
	r.Rating = w.RatingFor(r.Score)
	if a.zxcvbn {
		score, crack := zxcvbnOpinion(pw)
		r.ZxcvbnScore = &score
		r.ZxcvbnCrackTime = crack
	}
	return r
}

// Score combines entropy, length and the match/pattern flags of r into a value
// in [0, 100].
func Score(bits float64, length int, r types.Report, w Weights) float64 {
	s := w.Baseline
	s += math.Min(bits, w.EntropyCap) / w.EntropyCap * w.EntropyWeight
	switch {
	case length >= w.LongLength:
		s += w.LongBonus
	case length >= w.ShortLength:
		s += w.ShortBonus
	}
	if r.WordMatch() {
		s -= w.WordPenalty
	}
	if r.PatternDetected() {
		s -= w.PatternPenalty
	}
	if r.Breached {
		s -= w.BreachPenalty
	}
	return math.Max(0, math.Min(100, s))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
