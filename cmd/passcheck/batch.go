package passcheck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/report"
	"github.com/varalys/passcheck/internal/strength"
)

var flagWorkers int

func init() {
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Analyze one password per line from a file or stdin",
		Long: "Analyze every non-empty line of a file (or stdin) and print a table, or a JSON array\n" +
			"with --json. Passwords never appear in the output.",
		Args: cobra.MaximumNArgs(1),
		RunE: runBatch,
	}
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent analyzers (0 = GOMAXPROCS)")
	rootCmd.AddCommand(cmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open password list: %w", err)
		}
		defer f.Close()
		in = f
	}
	passwords, err := readPasswords(in)
	if err != nil {
		return err
	}

	reports, err := strength.AnalyzeAll(cmd.Context(), s.analyzer, passwords, flagWorkers)
	if err != nil {
		return err
	}
	s.logger.Debug("batch analyzed", "count", len(reports))

	out := cmd.OutOrStdout()
	if s.settings.format == "json" {
		if err := report.WriteJSON(out, reports, s.colorful(out)); err != nil {
			return err
		}
	} else if err := report.PrintBatchTable(out, reports); err != nil {
		return err
	}

	failed := false
	for _, r := range reports {
		s.record("batch", r)
		if report.ShouldFail(r, s.settings.failBelow) {
			failed = true
		}
	}
	if failed {
		return exitCode(1)
	}
	return nil
}

// readPasswords returns the non-empty lines of r with line endings removed.
// Surrounding spaces are part of the password and are kept.
func readPasswords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read password list: %w", err)
	}
	return out, nil
}
