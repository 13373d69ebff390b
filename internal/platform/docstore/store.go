// Package docstore is the persistence contract every ingestion component
// writes through: a collection-oriented document store with equality queries,
// shallow field updates and bulk deletes.
package docstore

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

var (
	// ErrDuplicate is returned when an insert violates a natural-key uniqueness constraint.
	ErrDuplicate = crerr.New("duplicate document")
	// ErrNotFound is returned by Update when no document has the given id.
	ErrNotFound = crerr.New("document not found")
)

// Query selects documents whose top-level fields equal every listed value.
// An empty query matches all documents of the collection.
type Query map[string]any

// Fields is a shallow patch of top-level document fields.
type Fields map[string]any

// Document is a stored record: its generated identity and JSON body.
type Document struct {
	ID   string
	Body []byte
}

type Store interface {
	FindOne(ctx context.Context, collection string, query Query) (Document, bool, error)
	FindMany(ctx context.Context, collection string, query Query) ([]Document, error)
	Insert(ctx context.Context, collection string, body []byte) (string, error)
	Update(ctx context.Context, collection, id string, fields Fields) error
	DeleteMany(ctx context.Context, collection string, query Query) (int64, error)
}

// Transactor is implemented by stores that can run several calls atomically.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WithinTx runs fn inside a transaction when store supports one and runs it
// directly otherwise.
func WithinTx(ctx context.Context, store Store, fn func(ctx context.Context) error) error {
	if tx, ok := store.(Transactor); ok {
		return tx.WithinTx(ctx, fn)
	}
	return fn(ctx)
}
