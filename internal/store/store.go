package store

import (
	"context"
	"errors"
	"strings"

	"github.com/togetai/feedback-api/internal/models"
)

// ErrDuplicateEmail is returned by Insert when an entry with the same
// (case-normalized) email already exists.
var ErrDuplicateEmail = errors.New("an entry with this email already exists")

// Store abstracts persistence of feedback entries. Two implementations
// exist: a JSON file on disk and a PostgreSQL table. They are mutually
// exclusive deployment configurations, selected at startup.
type Store interface {
	// Init ensures the underlying storage target exists. Idempotent;
	// called on every process start.
	Init(ctx context.Context) error

	// ListAll returns every stored entry. The file store preserves
	// insertion order; the Postgres store returns newest first.
	ListAll(ctx context.Context) ([]models.FeedbackEntry, error)

	// FindByEmail returns the entry with the given normalized email,
	// or nil if none exists.
	FindByEmail(ctx context.Context, email string) (*models.FeedbackEntry, error)

	// Insert appends one entry. Returns ErrDuplicateEmail if an entry
	// with the same email already exists.
	Insert(ctx context.Context, entry models.FeedbackEntry) error

	// DeleteByID removes one entry and reports whether it existed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Close releases the underlying storage handle.
	Close() error
}

// NormalizeEmail lower-cases and trims an email address. Dedup is always
// done on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
