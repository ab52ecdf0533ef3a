package passcheck

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/config"
	plog "github.com/varalys/passcheck/internal/log"
	"github.com/varalys/passcheck/internal/report"
	"github.com/varalys/passcheck/internal/strength"
	"github.com/varalys/passcheck/internal/types"
	"github.com/varalys/passcheck/internal/wordlist"
	"golang.org/x/term"
)

// settings is the effective configuration after merging flags, the local
// config file and the global one.
type settings struct {
	gps       float64
	wordlists []string
	common    string
	format    string
	noColor   bool
	zxcvbn    bool
	failBelow types.Rating
	auditLog  string
	weights   strength.Weights
}

// session bundles what a command needs to analyze and print.
type session struct {
	settings settings
	logger   *slog.Logger
	analyzer *strength.Analyzer
	dict     wordlist.Set
	common   wordlist.Set
}

func loadConfigs() (local, global config.FileConfig, err error) {
	if flagConfig != "" {
		local, err = config.LoadFile(flagConfig)
		if err != nil {
			return local, global, fmt.Errorf("load config %s: %w", flagConfig, err)
		}
	} else {
		cwd, _ := os.Getwd()
		local, err = config.LoadLocal(cwd)
		if err != nil && !errors.Is(err, config.ErrNotFound) {
			return local, global, fmt.Errorf("load local config: %w", err)
		}
	}
	global, err = config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return local, global, fmt.Errorf("load global config %s: %w", config.GlobalPath(), err)
	}
	return local, global, nil
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	var s settings
	lcfg, gcfg, err := loadConfigs()
	if err != nil {
		return s, err
	}

	if cmd.Flags().Changed("gps") {
		s.gps = flagGPS
		if !(s.gps > 0) {
			return s, fmt.Errorf("%w: --gps must be > 0, got %v", strength.ErrInvalidConfiguration, flagGPS)
		}
	} else {
		s.gps = pickFloat(0, lcfg.GuessesPerSecond, gcfg.GuessesPerSecond)
		if s.gps == 0 {
			s.gps = strength.DefaultGuessesPerSecond
		}
	}

	s.wordlists = pickStrings(flagWordlists, lcfg.Wordlists, gcfg.Wordlists)
	s.common = pickString(flagCommon, lcfg.Common, gcfg.Common)
	s.noColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	s.zxcvbn = pickBool(flagZxcvbn, lcfg.Zxcvbn, gcfg.Zxcvbn)
	s.auditLog = pickString(flagAuditLog, lcfg.AuditLog, gcfg.AuditLog)

	format := pickString(flagFormat, lcfg.Format, gcfg.Format)
	if flagJSON {
		format = "json"
	}
	if s.format, err = parseFormat(format); err != nil {
		return s, err
	}

	if fb := pickString(flagFailBelow, lcfg.FailBelow, gcfg.FailBelow); fb != "" {
		if s.failBelow, err = report.ParseRating(fb); err != nil {
			return s, err
		}
	}

	// global weights first, then local overrides
	s.weights = lcfg.Weights.Apply(gcfg.Weights.Apply(strength.DefaultWeights()))
	return s, nil
}

// parseFormat normalizes an output format name; empty selects text.
func parseFormat(f string) (string, error) {
	switch f = strings.ToLower(strings.TrimSpace(f)); f {
	case "":
		return "text", nil
	case "md":
		return "markdown", nil
	case "text", "table", "json", "markdown":
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, table, json or markdown)", f)
	}
}

func loadSession(cmd *cobra.Command) (*session, error) {
	s, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	logger := plog.New(cmd.ErrOrStderr(), flagVerbose)

	src := wordlist.FileSource{Logger: logger}
	dict := src.LoadAll(s.wordlists)
	var common wordlist.Set
	if s.common != "" {
		common = src.Load(s.common)
	}
	logger.Debug("wordlists loaded", "dictionary", dict.Len(), "common", common.Len())

	w := s.weights
	a, err := strength.New(strength.Config{
		GuessesPerSecond: s.gps,
		Wordlists:        []wordlist.Set{dict},
		Common:           common,
		Weights:          &w,
		Zxcvbn:           s.zxcvbn,
	})
	if err != nil {
		return nil, err
	}
	return &session{settings: s, logger: logger, analyzer: a, dict: dict, common: common}, nil
}

// emit renders one report in the configured format.
func (s *session) emit(w io.Writer, r types.Report) error {
	switch s.settings.format {
	case "json":
		return report.WriteJSON(w, r, s.colorful(w))
	case "table":
		return report.PrintTable(w, r)
	case "markdown":
		return report.WriteMarkdown(w, r)
	default:
		report.PrintText(w, r, report.PrintOptions{NoColor: !s.colorful(w)})
		return nil
	}
}

// colorful reports whether w is a terminal and colour has not been disabled.
func (s *session) colorful(w io.Writer) bool {
	if s.settings.noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
