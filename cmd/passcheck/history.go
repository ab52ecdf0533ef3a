package passcheck

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/audit"
	"github.com/varalys/passcheck/internal/report"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded analyses from the audit log",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "show at most N records (0 = all)")
	cmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "delete the audit log")
	rootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if s.auditLog == "" {
		return errors.New("no audit log configured (use --audit-log or audit_log in the config file)")
	}
	log := audit.NewAuditLog(s.auditLog)
	out := cmd.OutOrStdout()

	if flagHistoryClear {
		if err := log.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cleared", log.Path())
		return nil
	}

	records, err := log.LoadHistory()
	if err != nil {
		return err
	}
	if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
		records = records[:flagHistoryLimit]
	}
	if s.format == "json" {
		return report.WriteJSON(out, records, false)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No recorded analyses in", log.Path())
		return nil
	}
	return report.PrintHistory(out, records)
}
