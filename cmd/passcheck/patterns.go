package passcheck

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/strength"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List pattern detectors and keyboard substrings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, d := range strength.Detectors {
				fmt.Fprintf(out, "%-18s %s\n", d.ID, d.Description)
			}
			fmt.Fprintf(out, "\nrepeat run: %d, sequence run: %d\n", s.weights.RepeatRun, s.weights.SequenceRun)
			fmt.Fprintf(out, "keyboard substrings: %s\n", strings.Join(s.weights.Keyboard, ", "))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
