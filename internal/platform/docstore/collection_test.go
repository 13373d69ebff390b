package docstore_test

import (
	"context"
	"errors"
	"testing"

	crerr "github.com/cockroachdb/errors"
	docstoremock "github.com/riskibarqy/cricket-stats/internal/mocks/platform/docstore"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	"github.com/riskibarqy/cricket-stats/internal/platform/validation"
	"github.com/stretchr/testify/mock"
)

type umpireDoc struct {
	ID   string `json:"-"`
	Name string `json:"name" validate:"required"`
}

func newUmpires(store docstore.Store) *docstore.Collection[umpireDoc] {
	return docstore.NewCollection(store, "umpires", func(u *umpireDoc, id string) { u.ID = id })
}

func TestCollection_InsertStampsGeneratedID(t *testing.T) {
	store := docstoremock.NewStore(t)
	store.
		On("Insert", mock.Anything, "umpires", []byte(`{"name":"Aleem Dar"}`)).
		Return("u-1", nil).
		Once()

	got, err := newUmpires(store).Insert(t.Context(), umpireDoc{Name: "Aleem Dar"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got.ID != "u-1" {
		t.Fatalf("expected id u-1, got %q", got.ID)
	}
}

func TestCollection_InsertRejectsInvalidRecordWithoutWriting(t *testing.T) {
	store := docstoremock.NewStore(t)

	_, err := newUmpires(store).Insert(t.Context(), umpireDoc{})
	if !crerr.Is(err, validation.ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollection_PropagatesStoreErrors(t *testing.T) {
	errUnreachable := errors.New("store unreachable")
	store := docstoremock.NewStore(t)
	store.
		On("FindOne", mock.Anything, "umpires", docstore.Query{"name": "Aleem Dar"}).
		Return(docstore.Document{}, false, errUnreachable).
		Once()

	_, _, err := newUmpires(store).FindOne(t.Context(), docstore.Query{"name": "Aleem Dar"})
	if !errors.Is(err, errUnreachable) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestCollection_FindManyDecodesInOrder(t *testing.T) {
	store := docstoremock.NewStore(t)
	store.
		On("FindMany", mock.Anything, "umpires", docstore.Query{}).
		Return([]docstore.Document{
			{ID: "u-1", Body: []byte(`{"name":"Aleem Dar"}`)},
			{ID: "u-2", Body: []byte(`{"name":"Kumar Dharmasena"}`)},
		}, nil).
		Once()

	got, err := newUmpires(store).FindMany(t.Context(), docstore.Query{})
	if err != nil {
		t.Fatalf("find many: %v", err)
	}
	if len(got) != 2 || got[0].ID != "u-1" || got[1].Name != "Kumar Dharmasena" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

type txStore struct {
	docstore.Store
	calls int
}

func (s *txStore) WithinTx(ctx context.Context, fn func(context.Context) error) error {
	s.calls++
	return fn(ctx)
}

func TestWithinTx(t *testing.T) {
	tx := &txStore{}
	ran := false
	if err := docstore.WithinTx(t.Context(), tx, func(context.Context) error { ran = true; return nil }); err != nil {
		t.Fatalf("within tx: %v", err)
	}
	if tx.calls != 1 || !ran {
		t.Fatalf("expected transactor to run fn once, calls=%d ran=%v", tx.calls, ran)
	}

	plain := docstoremock.NewStore(t)
	ran = false
	if err := docstore.WithinTx(t.Context(), plain, func(context.Context) error { ran = true; return nil }); err != nil {
		t.Fatalf("within tx without transactor: %v", err)
	}
	if !ran {
		t.Fatalf("expected fn to run directly")
	}
}
