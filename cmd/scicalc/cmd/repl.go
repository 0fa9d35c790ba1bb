package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/session"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions from standard input",
	Long: `Read one expression per line and print its answer. Answers are kept in the
history, and Ans starts as the most recent answer in it.

Lines starting with a colon are commands:
  :history     list the history
  :recall N    make the Nth most recent answer the previous answer
  :clear       clear the history
  :quit        exit`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sess := newSession(cfg, store)
	ctx := cmd.Context()
	if err := sess.Resume(ctx); err != nil {
		printError("reading history", err)
	}
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	return repl(ctx, sess, cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
}

// repl runs the read-evaluate-print loop until in is exhausted or :quit.
func repl(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, promptStyle.Render("> "))
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, ":") {
			quit, err := command(ctx, sess, line, out)
			if err != nil {
				fmt.Fprintln(out, errorStyle.Render(err.Error()))
			}
			if quit {
				return nil
			}
			continue
		}
		r, err := sess.Submit(ctx, line)
		switch {
		case errors.Is(err, session.ErrBlank):
			continue
		case errors.Is(err, scicalc.ErrSyntax):
			fmt.Fprintln(out, errorStyle.Render("syntax error"))
			continue
		case err != nil:
			// The answer is valid even if saving it failed.
			printError("saving history", err)
		}
		fmt.Fprintln(out, answerStyle.Render(r.Display))
	}
	return sc.Err()
}

// command runs a colon command. It reports whether the loop should end.
func command(ctx context.Context, sess *session.Session, line string, out io.Writer) (bool, error) {
	f := strings.Fields(line)
	switch f[0] {
	case ":quit", ":q":
		return true, nil
	case ":history", ":h":
		l, err := sess.History(ctx)
		if err != nil {
			return false, err
		}
		for i, e := range l {
			fmt.Fprintf(out, "%s %s = %s\n", mutedStyle.Render(strconv.Itoa(len(l)-i)), e.Expr, answerStyle.Render(sess.Format(e.Number())))
		}
		return false, nil
	case ":recall", ":r":
		n := 1
		if len(f) > 1 {
			var err error
			if n, err = strconv.Atoi(f[1]); err != nil {
				return false, fmt.Errorf("recall: %q is not a number", f[1])
			}
		}
		e, err := sess.Recall(ctx, n)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, answerStyle.Render(sess.Format(e.Number())))
		return false, nil
	case ":clear":
		return false, sess.Clear(ctx)
	}
	return false, fmt.Errorf("unknown command %s", f[0])
}
