package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/varalys/passcheck/internal/strength"
	"gopkg.in/yaml.v3"
)

// AppName names the global config directory.
const AppName = "passcheck"

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("no config file")

// FileConfig is the on-disk YAML configuration shape for passcheck.
type FileConfig struct {
	GuessesPerSecond *float64 `yaml:"guesses_per_second"`
	Wordlists        []string `yaml:"wordlists"`
	Common           *string  `yaml:"common"`
	Format           *string  `yaml:"format"`
	NoColor          *bool    `yaml:"no_color"`
	Zxcvbn           *bool    `yaml:"zxcvbn"`
	FailBelow        *string  `yaml:"fail_below"`
	AuditLog         *string  `yaml:"audit_log"`

	// Weights overrides individual scoring constants
	Weights *WeightsConfig `yaml:"weights"`
}

// WeightsConfig mirrors strength.Weights with optional fields.
type WeightsConfig struct {
	LowerSize      *int     `yaml:"lower_size"`
	UpperSize      *int     `yaml:"upper_size"`
	DigitSize      *int     `yaml:"digit_size"`
	SymbolSize     *int     `yaml:"symbol_size"`
	Baseline       *float64 `yaml:"baseline"`
	EntropyWeight  *float64 `yaml:"entropy_weight"`
	EntropyCap     *float64 `yaml:"entropy_cap"`
	LongLength     *int     `yaml:"long_length"`
	LongBonus      *float64 `yaml:"long_bonus"`
	ShortLength    *int     `yaml:"short_length"`
	ShortBonus     *float64 `yaml:"short_bonus"`
	WordPenalty    *float64 `yaml:"word_penalty"`
	PatternPenalty *float64 `yaml:"pattern_penalty"`
	BreachPenalty  *float64 `yaml:"breach_penalty"`
	RepeatRun      *int     `yaml:"repeat_run"`
	SequenceRun    *int     `yaml:"sequence_run"`
	Keyboard       []string `yaml:"keyboard"`
	ExcellentAt    *float64 `yaml:"excellent_at"`
	StrongAt       *float64 `yaml:"strong_at"`
	ModerateAt     *float64 `yaml:"moderate_at"`
	WeakAt         *float64 `yaml:"weak_at"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches dir for .passcheck.yml/.yaml or passcheck.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".passcheck.yml", ".passcheck.yaml", "passcheck.yml", "passcheck.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, ErrNotFound
}

// GlobalPath returns the global config location under the XDG config home.
func GlobalPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	p := GlobalPath()
	if _, err := os.Stat(p); err != nil {
		return cfg, ErrNotFound
	}
	return LoadFile(p)
}

// Apply overlays the set fields of wc onto w.
func (wc *WeightsConfig) Apply(w strength.Weights) strength.Weights {
	if wc == nil {
		return w
	}
	setInt(&w.LowerSize, wc.LowerSize)
	setInt(&w.UpperSize, wc.UpperSize)
	setInt(&w.DigitSize, wc.DigitSize)
	setInt(&w.SymbolSize, wc.SymbolSize)
	setFloat(&w.Baseline, wc.Baseline)
	setFloat(&w.EntropyWeight, wc.EntropyWeight)
	setFloat(&w.EntropyCap, wc.EntropyCap)
	setInt(&w.LongLength, wc.LongLength)
	setFloat(&w.LongBonus, wc.LongBonus)
	setInt(&w.ShortLength, wc.ShortLength)
	setFloat(&w.ShortBonus, wc.ShortBonus)
	setFloat(&w.WordPenalty, wc.WordPenalty)
	setFloat(&w.PatternPenalty, wc.PatternPenalty)
	setFloat(&w.BreachPenalty, wc.BreachPenalty)
	setInt(&w.RepeatRun, wc.RepeatRun)
	setInt(&w.SequenceRun, wc.SequenceRun)
	if wc.Keyboard != nil {
		w.Keyboard = append([]string(nil), wc.Keyboard...)
	}
	setFloat(&w.ExcellentAt, wc.ExcellentAt)
	setFloat(&w.StrongAt, wc.StrongAt)
	setFloat(&w.ModerateAt, wc.ModerateAt)
	setFloat(&w.WeakAt, wc.WeakAt)
	return w
}

// FromWeights returns a fully populated WeightsConfig, used by `config init`.
func FromWeights(w strength.Weights) *WeightsConfig {
	return &WeightsConfig{
		LowerSize:      &w.LowerSize,
		UpperSize:      &w.UpperSize,
		DigitSize:      &w.DigitSize,
		SymbolSize:     &w.SymbolSize,
		Baseline:       &w.Baseline,
		EntropyWeight:  &w.EntropyWeight,
		EntropyCap:     &w.EntropyCap,
		LongLength:     &w.LongLength,
		LongBonus:      &w.LongBonus,
		ShortLength:    &w.ShortLength,
		ShortBonus:     &w.ShortBonus,
		WordPenalty:    &w.WordPenalty,
		PatternPenalty: &w.PatternPenalty,
		BreachPenalty:  &w.BreachPenalty,
		RepeatRun:      &w.RepeatRun,
		SequenceRun:    &w.SequenceRun,
		Keyboard:       append([]string(nil), w.Keyboard...),
		ExcellentAt:    &w.ExcellentAt,
		StrongAt:       &w.StrongAt,
		ModerateAt:     &w.ModerateAt,
		WeakAt:         &w.WeakAt,
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
