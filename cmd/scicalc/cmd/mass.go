package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/molar"
)

var massCmd = &cobra.Command{
	Use:   "mass formula...",
	Short: "Print molar masses of chemical formulas",
	Long: `Print the molar mass in g/mol of each formula, such as H2O, Ca(OH)2, or
Fe2(SO4)3.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range args {
			m, err := molar.Mass(f)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			fmt.Fprintf(out, "%s\t%s g/mol\n", f, scicalc.FromFloat(m).Format(cfg.Display.MaxDigits))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(massCmd)
}
