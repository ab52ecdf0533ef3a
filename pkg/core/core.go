package core

import (
	"context"

	"github.com/varalys/passcheck/internal/strength"
	"github.com/varalys/passcheck/internal/types"
	"github.com/varalys/passcheck/internal/wordlist"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config   = strength.Config
	Weights  = strength.Weights
	Report   = types.Report
	Rating   = types.Rating
	Analyzer = strength.Analyzer
	Wordlist = wordlist.Set
)

// ErrInvalidConfiguration is returned by New for an unusable Config.
var ErrInvalidConfiguration = strength.ErrInvalidConfiguration

// DefaultWeights returns the stock scoring constants.
func DefaultWeights() Weights { return strength.DefaultWeights() }

// NewWordlist builds a wordlist from in-memory words.
func NewWordlist(words ...string) Wordlist { return wordlist.NewSet(words...) }

// LoadWordlist reads a wordlist file; an unreadable file yields an empty list.
func LoadWordlist(path string) Wordlist { return wordlist.FileSource{}.Load(path) }

// New prepares a reusable Analyzer.
func New(cfg Config) (*Analyzer, error) { return strength.New(cfg) }

// Analyze is the one-shot entrypoint: it builds an Analyzer from cfg and scores pw.
func Analyze(pw string, cfg Config) (Report, error) {
	a, err := strength.New(cfg)
	if err != nil {
		return Report{}, err
	}
	return a.Analyze(pw), nil
}

// AnalyzeAll scores passwords concurrently, keeping input order.
func AnalyzeAll(ctx context.Context, a *Analyzer, passwords []string, workers int) ([]Report, error) {
	return strength.AnalyzeAll(ctx, a, passwords, workers)
}
