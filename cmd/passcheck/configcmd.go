package passcheck

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/varalys/passcheck/internal/config"
	"github.com/varalys/passcheck/internal/strength"
	"gopkg.in/yaml.v3"
)

var (
	cfgOutput string
	cfgForce  bool
	cfgGPS    float64
	cfgFormat string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .passcheck.yml with the default scoring weights",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".passcheck.yml", "output file path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
	initCmd.Flags().Float64Var(&cfgGPS, "gps", strength.DefaultGuessesPerSecond, "guesses per second to record")
	initCmd.Flags().StringVar(&cfgFormat, "format", "text", "default output format")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the global config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GlobalPath())
		},
	}
	cfgCmd.AddCommand(pathCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if !(cfgGPS > 0) {
		return fmt.Errorf("%w: --gps must be > 0", strength.ErrInvalidConfiguration)
	}
	format, err := parseFormat(cfgFormat)
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgOutput); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	fc := config.FileConfig{
		GuessesPerSecond: floatPtr(cfgGPS),
		Wordlists:        []string{},
		Format:           strPtr(format),
		NoColor:          boolPtr(false),
		Zxcvbn:           boolPtr(false),
		Weights:          config.FromWeights(strength.DefaultWeights()),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func strPtr(s string) *string     { return &s }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
