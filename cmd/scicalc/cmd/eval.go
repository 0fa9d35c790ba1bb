package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc/internal/history"
	"github.com/zephyrtronium/scicalc/internal/session"
)

var (
	evalIn   string
	evalEcho bool
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions in order",
	Long: `Evaluate each argument as an expression, in order. Ans in each expression
is the answer of the one before it. With --in, each line of the file is
also an expression, evaluated before the arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lines := args
		if evalIn != "" {
			l, err := readLines(evalIn)
			if err != nil {
				return err
			}
			lines = append(l, args...)
		}
		if len(lines) == 0 {
			return errors.New("no expressions")
		}

		ev := newEvaluator(cfg)
		sess := newSession(cfg, new(history.MemoryStore))
		ctx := cmd.Context()
		out := cmd.OutOrStdout()
		failed := 0
		for _, line := range lines {
			if evalEcho {
				if e, err := ev.Parse(session.CloseParens(line), sess.Answer()); err == nil {
					fmt.Fprintf(out, "%v : ", e)
				}
			}
			r, err := sess.Submit(ctx, line)
			switch {
			case errors.Is(err, session.ErrBlank):
				continue
			case err != nil:
				fmt.Fprintln(out, "syntax error")
				failed++
				continue
			}
			fmt.Fprintln(out, r.Display)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d expressions failed", failed, len(lines))
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&evalIn, "in", "", `file of expressions, one per line ("-" for stdin)`)
	evalCmd.Flags().BoolVar(&evalEcho, "echo", false, "print each expression in postfix form before its answer")
	rootCmd.AddCommand(evalCmd)
}

func readLines(name string) ([]string, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
