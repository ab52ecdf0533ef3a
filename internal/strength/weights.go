package strength

import (
	"fmt"

	"github.com/varalys/passcheck/internal/types"
)

// DefaultGuessesPerSecond is the brute-force rate assumed when none is given.
const DefaultGuessesPerSecond = 1e9

// Weights holds every constant that shapes charset sizing, scoring and rating.
// A Weights value is treated as immutable once handed to an Analyzer.
type Weights struct {
	// Charset class contributions.
	LowerSize  int
	UpperSize  int
	DigitSize  int
	SymbolSize int

	Baseline      float64
	EntropyWeight float64 // points awarded at EntropyCap bits
	EntropyCap    float64

	LongLength  int
	LongBonus   float64
	ShortLength int
	ShortBonus  float64

	WordPenalty    float64 // dictionary or common-password match
	PatternPenalty float64 // any of repeat/sequence/keyboard
	BreachPenalty  float64

	RepeatRun   int
	SequenceRun int
	Keyboard    []string

	// Lower bounds for each rating, strongest first.
	ExcellentAt float64
	StrongAt    float64
	ModerateAt  float64
	WeakAt      float64
}

// DefaultKeyboard lists the weak substrings the keyboard detector looks for.
var DefaultKeyboard = []string{"qwerty", "asdf", "zxcv", "1234", "4321", "password"}

// DefaultWeights returns the stock scoring constants.
func DefaultWeights() Weights {
	return Weights{
		LowerSize:  26,
		UpperSize:  26,
		DigitSize:  10,
		SymbolSize: 32,

		Baseline:      50,
		EntropyWeight: 50,
		EntropyCap:    80,

		LongLength:  12,
		LongBonus:   10,
		ShortLength: 8,
		ShortBonus:  5,

		WordPenalty:    50,
		PatternPenalty: 30,
		BreachPenalty:  100,

		RepeatRun:   3,
		SequenceRun: 4,
		Keyboard:    append([]string(nil), DefaultKeyboard...),

		ExcellentAt: 85,
		StrongAt:    70,
		ModerateAt:  50,
		WeakAt:      25,
	}
}

// Validate checks that the weights can produce meaningful results.
func (w Weights) Validate() error {
	if w.LowerSize < 0 || w.UpperSize < 0 || w.DigitSize < 0 || w.SymbolSize < 0 {
		return fmt.Errorf("%w: charset sizes must not be negative", ErrInvalidConfiguration)
	}
	if w.EntropyCap <= 0 {
		return fmt.Errorf("%w: entropy cap must be > 0", ErrInvalidConfiguration)
	}
	if w.RepeatRun < 2 || w.SequenceRun < 2 {
		return fmt.Errorf("%w: run lengths must be >= 2", ErrInvalidConfiguration)
	}
	if !(w.ExcellentAt >= w.StrongAt && w.StrongAt >= w.ModerateAt && w.ModerateAt >= w.WeakAt) {
		return fmt.Errorf("%w: rating thresholds must be descending", ErrInvalidConfiguration)
	}
	return nil
}

// RatingFor maps a score to its label. Each tier includes its lower bound.
func (w Weights) RatingFor(score float64) types.Rating {
	switch {
	case score >= w.ExcellentAt:
		return types.RatingExcellent
	case score >= w.StrongAt:
		return types.RatingStrong
	case score >= w.ModerateAt:
		return types.RatingModerate
	case score >= w.WeakAt:
		return types.RatingWeak
	default:
		return types.RatingVeryWeak
	}
}
