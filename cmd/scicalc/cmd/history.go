package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the answer history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List answers, oldest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(env *historyEnv) error {
			l, err := env.store.List(cmd.Context(), historyLimit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range l {
				fmt.Fprintf(out, "%s\t%s\t%s\n", e.Created.Local().Format("2006-01-02 15:04:05"), e.Expr, e.Number().Format(env.digits))
			}
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all answers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(env *historyEnv) error {
			return env.store.Clear(cmd.Context())
		})
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export file",
	Short: `Write the history as YAML ("-" for stdout)`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(env *historyEnv) error {
			l, err := env.store.List(cmd.Context(), 0)
			if err != nil {
				return err
			}
			if args[0] == "-" {
				return history.Export(cmd.OutOrStdout(), l)
			}
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := history.Export(f, l); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	},
}

var historyImportCmd = &cobra.Command{
	Use:   "import file",
	Short: `Append answers from a YAML archive ("-" for stdin)`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		entries, err := history.Import(r)
		if err != nil {
			return err
		}
		return withStore(func(env *historyEnv) error {
			ctx := cmd.Context()
			for _, e := range entries {
				if err := env.store.Push(ctx, e); err != nil {
					return err
				}
			}
			if err := env.store.Trim(ctx, env.maxEntries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", len(entries))
			return nil
		})
	},
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "list only the most recent n answers")
	historyCmd.AddCommand(historyListCmd, historyClearCmd, historyExportCmd, historyImportCmd)
	rootCmd.AddCommand(historyCmd)
}

// historyEnv is what the history commands need from the configuration.
type historyEnv struct {
	store      history.Store
	digits     int
	maxEntries int
}

// withStore opens the configured history store for the duration of f.
func withStore(f func(*historyEnv) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return f(&historyEnv{store: store, digits: cfg.Display.MaxDigits, maxEntries: cfg.History.MaxEntries})
}
