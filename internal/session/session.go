// Package session holds the state of an interactive calculation: the
// previous answer and the history of answers.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/history"
)

// ErrBlank is returned by Submit for a line with no expression.
var ErrBlank = errors.New("blank line")

// ErrNoEntry is returned by Recall when the history is too short.
var ErrNoEntry = errors.New("no such history entry")

// Options configures a Session.
type Options struct {
	// MaxDigits is passed to Number.Format for Result.Display. Default 12.
	MaxDigits int
	// MaxEntries bounds the history. Default 50.
	MaxEntries int
	// Logger receives the cause of each failed evaluation. Nil discards.
	Logger *log.Logger
}

// Result is the outcome of a successful Submit.
type Result struct {
	// Expr is the expression as evaluated, with parentheses closed.
	Expr    string
	Answer  scicalc.Number
	Display string
}

// Session is a calculator session. It is safe for concurrent use, although
// concurrent submissions race for the previous answer.
type Session struct {
	ev    *scicalc.Evaluator
	store history.Store
	opts  Options
	log   *log.Logger

	mu  sync.Mutex
	ans scicalc.Number
}

// New creates a session. The previous answer starts at zero.
func New(ev *scicalc.Evaluator, store history.Store, opts Options) *Session {
	if opts.MaxDigits <= 0 {
		opts.MaxDigits = 12
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = 50
	}
	lg := opts.Logger
	if lg == nil {
		lg = log.New(io.Discard, "", 0)
	}
	return &Session{ev: ev, store: store, opts: opts, log: lg}
}

// Submit evaluates a line using the previous answer for Ans. Unclosed
// parentheses are closed at the end of the line. On success, the answer
// becomes the previous answer and is added to the history. If evaluation
// fails, Submit returns scicalc.ErrSyntax and the previous answer is
// unchanged; the cause goes to the session's logger.
//
// If saving to the history fails, Submit returns the result along with the
// error.
func (s *Session) Submit(ctx context.Context, line string) (Result, error) {
	expr := strings.TrimSpace(line)
	if expr == "" {
		return Result{}, ErrBlank
	}
	expr = CloseParens(expr)

	s.mu.Lock()
	r, err := s.ev.Evaluate(expr, s.ans)
	if err != nil {
		s.mu.Unlock()
		s.log.Printf("%q: %v", expr, err)
		return Result{}, scicalc.ErrSyntax
	}
	s.ans = r
	s.mu.Unlock()

	res := Result{Expr: expr, Answer: r, Display: r.Format(s.opts.MaxDigits)}
	if err := s.store.Push(ctx, history.NewEntry(expr, r)); err != nil {
		return res, fmt.Errorf("failed to save answer: %w", err)
	}
	if err := s.store.Trim(ctx, s.opts.MaxEntries); err != nil {
		return res, fmt.Errorf("failed to trim history: %w", err)
	}
	return res, nil
}

// CloseParens appends a ) for each ( in expr that is not closed.
func CloseParens(expr string) string {
	n := strings.Count(expr, "(") - strings.Count(expr, ")")
	if n <= 0 {
		return expr
	}
	return expr + strings.Repeat(")", n)
}

// Answer returns the previous answer.
func (s *Session) Answer() scicalc.Number {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ans
}

// Format formats a number with the session's digits.
func (s *Session) Format(x scicalc.Number) string {
	return x.Format(s.opts.MaxDigits)
}

// History returns the retained history, oldest first.
func (s *Session) History(ctx context.Context) ([]history.Entry, error) {
	return s.store.List(ctx, s.opts.MaxEntries)
}

// Recall makes the answer of the nth most recent history entry the previous
// answer. The most recent entry is 1.
func (s *Session) Recall(ctx context.Context, n int) (history.Entry, error) {
	if n < 1 {
		return history.Entry{}, ErrNoEntry
	}
	l, err := s.store.List(ctx, n)
	if err != nil {
		return history.Entry{}, err
	}
	if len(l) < n {
		return history.Entry{}, ErrNoEntry
	}
	e := l[0]
	s.mu.Lock()
	s.ans = e.Number()
	s.mu.Unlock()
	return e, nil
}

// Resume restores the previous answer from the most recent history entry, if
// there is one.
func (s *Session) Resume(ctx context.Context) error {
	_, err := s.Recall(ctx, 1)
	if errors.Is(err, ErrNoEntry) {
		return nil
	}
	return err
}

// Clear removes the history. The previous answer is kept.
func (s *Session) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
