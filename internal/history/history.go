// Package history stores previous answers together with the expressions that
// produced them.
package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/zephyrtronium/scicalc"
)

// Entry is one evaluated expression.
type Entry struct {
	ID   string `yaml:"id"`
	Expr string `yaml:"expr"`
	// Answer is the answer as a float64, which may overflow. Mantissa and
	// Exponent hold the exact answer.
	Answer   float64   `yaml:"answer"`
	Mantissa float64   `yaml:"mantissa"`
	Exponent int       `yaml:"exponent"`
	Created  time.Time `yaml:"created"`
}

// NewEntry creates an entry for an answer with a fresh ID.
func NewEntry(expr string, ans scicalc.Number) Entry {
	return Entry{
		ID:       uuid.New().String(),
		Expr:     expr,
		Answer:   ans.Float64(),
		Mantissa: ans.Mantissa(),
		Exponent: ans.Exponent(),
		Created:  time.Now().UTC(),
	}
}

// Number returns the entry's answer.
func (e Entry) Number() scicalc.Number {
	return scicalc.New(e.Mantissa, e.Exponent)
}

// Store persists history entries in insertion order.
type Store interface {
	// Push appends an entry. An empty ID or zero Created time is filled in.
	Push(ctx context.Context, e Entry) error
	// List returns the most recent limit entries, oldest first. A limit of
	// zero or less lists all entries.
	List(ctx context.Context, limit int) ([]Entry, error)
	// Trim removes all but the most recent keep entries.
	Trim(ctx context.Context, keep int) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
	Close() error
}

// fill sets an entry's ID and creation time if they are missing.
func fill(e *Entry) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Created.IsZero() {
		e.Created = time.Now().UTC()
	}
}
