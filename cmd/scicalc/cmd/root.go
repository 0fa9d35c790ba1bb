package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/config"
	"github.com/zephyrtronium/scicalc/internal/history"
	"github.com/zephyrtronium/scicalc/internal/session"
)

var (
	cfgFile string
	verbose bool
	digits  int
)

var rootCmd = &cobra.Command{
	Use:   "scicalc",
	Short: "Scientific notation calculator",
	Long: `scicalc evaluates expressions over numbers in scientific notation.

Expressions use + - * / ^, sqrt(x), ln(x), and M(formula) for the molar
mass of a chemical formula. Adjacent terms multiply, as in 2(3+4) or
3sqrt(4), and Ans is the previous answer.

Without a command, scicalc reads expressions from standard input.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runREPL,
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCICALC_CONFIG, ./scicalc.toml, ~/.config/scicalc/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the cause of each error")
	rootCmd.PersistentFlags().IntVar(&digits, "digits", 0, "maximum display digits, 1 to 17 (default from config)")
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if digits != 0 {
		cfg.Display.MaxDigits = digits
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func logger() *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "scicalc: ", 0)
}

func openStore(cfg *config.Config) (history.Store, error) {
	if cfg.InMemory() {
		return new(history.MemoryStore), nil
	}
	return history.OpenSQLite(cfg.History.Path)
}

func newEvaluator(cfg *config.Config) *scicalc.Evaluator {
	return scicalc.NewEvaluator(cfg.Options()...)
}

func newSession(cfg *config.Config, store history.Store) *session.Session {
	return session.New(newEvaluator(cfg), store, session.Options{
		MaxDigits:  cfg.Display.MaxDigits,
		MaxEntries: cfg.History.MaxEntries,
		Logger:     logger(),
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
