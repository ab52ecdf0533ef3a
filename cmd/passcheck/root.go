package passcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/audit"
	"github.com/varalys/passcheck/internal/prompt"
	"github.com/varalys/passcheck/internal/report"
	"github.com/varalys/passcheck/internal/types"
)

var (
	flagWordlists []string
	flagCommon    string
	flagGPS       float64
	flagJSON      bool
	flagFormat    string
	flagNoColor   bool
	flagClipboard bool
	flagZxcvbn    bool
	flagFailBelow string
	flagAuditLog  string
	flagVerbose   bool
	flagConfig    string

	version = "0.1.0"
)

const (
	interactiveBanner = "Password Strength Analyzer (interactive mode)"
	interactiveHint   = "Press Enter on empty line to exit."
	interactivePrompt = "Enter a password to analyze (leave blank to quit): "
)

// rootCmd analyzes a single password, or prompts for passwords when none is given.
var rootCmd = &cobra.Command{
	Use:   "passcheck [password]",
	Short: "Estimate password strength",
	Long: "passcheck estimates the strength of a password: entropy, brute-force crack time,\n" +
		"dictionary and common-password matches, and simple patterns.\n\n" +
		"Without a password argument it prompts for passwords interactively.",
	Args:          cobra.MaximumNArgs(1),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAnalyze,
}

// exitCode carries a non-error process status (a failed --fail-below gate).
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// Execute runs the passcheck CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&flagWordlists, "wordlist", nil, "extra wordlist file, one word per line (repeatable, globs allowed)")
	pf.StringVar(&flagCommon, "common", "", "common/breached password list")
	pf.Float64Var(&flagGPS, "gps", 0, "assumed guesses per second (default 1e9)")
	pf.BoolVar(&flagJSON, "json", false, "emit JSON (same as --format json)")
	pf.StringVar(&flagFormat, "format", "", "output format: text | table | json | markdown")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVar(&flagZxcvbn, "zxcvbn", false, "add a zxcvbn second opinion to each report")
	pf.StringVar(&flagFailBelow, "fail-below", "", "exit 1 when the rating is below this level (very-weak|weak|moderate|strong|excellent)")
	pf.StringVar(&flagAuditLog, "audit-log", "", "append redacted reports to this JSONL file")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&flagConfig, "config", "", "config file (default: ./.passcheck.yml, then $XDG_CONFIG_HOME/passcheck/config.yml)")
	rootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "read the password from the system clipboard")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case len(args) == 1 && args[0] != "":
		return analyzeOne(out, s, args[0], "arg")
	case flagClipboard:
		pw, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("read clipboard: %w", err)
		}
		pw = strings.TrimRight(pw, "\r\n")
		if pw == "" {
			return errors.New("clipboard is empty")
		}
		return analyzeOne(out, s, pw, "clipboard")
	default:
		// an empty argument is treated like no argument
		return interactive(out, cmd.ErrOrStderr(), prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr()), s)
	}
}

func analyzeOne(out io.Writer, s *session, pw, mode string) error {
	r := s.analyzer.Analyze(pw)
	if err := s.emit(out, r); err != nil {
		return err
	}
	s.record(mode, r)
	if report.ShouldFail(r, s.settings.failBelow) {
		return exitCode(1)
	}
	return nil
}

// interactive prompts until a blank line, end of input or Ctrl+C.
func interactive(out, errOut io.Writer, p prompt.Prompter, s *session) error {
	fmt.Fprintln(errOut, interactiveBanner)
	fmt.Fprintln(errOut, interactiveHint)
	for {
		pw, err := p.Prompt(interactivePrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, prompt.ErrAborted) {
				break
			}
			return err
		}
		if pw == "" {
			break
		}
		r := s.analyzer.Analyze(pw)
		if err := s.emit(out, r); err != nil {
			return err
		}
		s.record("interactive", r)
	}
	fmt.Fprintln(errOut, "Bye!")
	return nil
}

// record appends r to the audit log when one is configured. Failures are
// logged and never abort the analysis.
func (s *session) record(mode string, r types.Report) {
	if s.settings.auditLog == "" {
		return
	}
	rec := audit.NewAnalysisRecord(mode, r, s.dict.Fingerprint(), s.common.Fingerprint())
	if err := audit.NewAuditLog(s.settings.auditLog).LogAnalysis(rec); err != nil {
		s.logger.Warn("audit log write failed", "path", s.settings.auditLog, "err", err)
	}
}
