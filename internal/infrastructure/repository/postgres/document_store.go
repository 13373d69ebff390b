package postgres

import (
	"context"
	"database/sql"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	idgen "github.com/riskibarqy/cricket-stats/internal/platform/id"
	qb "github.com/riskibarqy/cricket-stats/internal/platform/querybuilder"
)

const documentsTable = "documents"

const uniqueViolation = pq.ErrorCode("23505")

type documentRow struct {
	ID   string `db:"id"`
	Body []byte `db:"body"`
}

// DocumentStore persists documents as JSONB rows of a single table keyed by
// (collection, id). Queries use JSONB containment, so equality on top-level
// scalar fields is served by the GIN index.
type DocumentStore struct {
	db  *sqlx.DB
	ids idgen.Generator
}

func NewDocumentStore(db *sqlx.DB, ids idgen.Generator) *DocumentStore {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &DocumentStore{db: db, ids: ids}
}

func (s *DocumentStore) FindOne(ctx context.Context, collection string, query docstore.Query) (docstore.Document, bool, error) {
	stmt, args, err := buildSelect(collection, query, 1)
	if err != nil {
		return docstore.Document{}, false, err
	}

	var row documentRow
	if err := sqlx.GetContext(ctx, s.conn(ctx), &row, stmt, args...); err != nil {
		if crerr.Is(err, sql.ErrNoRows) {
			return docstore.Document{}, false, nil
		}
		return docstore.Document{}, false, crerr.Wrapf(err, "select one from %s", collection)
	}
	return docstore.Document{ID: row.ID, Body: row.Body}, true, nil
}

func (s *DocumentStore) FindMany(ctx context.Context, collection string, query docstore.Query) ([]docstore.Document, error) {
	stmt, args, err := buildSelect(collection, query, 0)
	if err != nil {
		return nil, err
	}

	var rows []documentRow
	if err := sqlx.SelectContext(ctx, s.conn(ctx), &rows, stmt, args...); err != nil {
		return nil, crerr.Wrapf(err, "select many from %s", collection)
	}

	out := make([]docstore.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, docstore.Document{ID: row.ID, Body: row.Body})
	}
	return out, nil
}

func (s *DocumentStore) Insert(ctx context.Context, collection string, body []byte) (string, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return "", crerr.Wrap(err, "generate document id")
	}

	stmt, args, err := qb.InsertInto(documentsTable).
		Columns("collection", "id", "body").
		Values(collection, id, string(body)).
		ToSQL()
	if err != nil {
		return "", crerr.Wrap(err, "build insert document query")
	}

	if _, err := s.conn(ctx).ExecContext(ctx, stmt, args...); err != nil {
		return "", mapError(crerr.Wrapf(err, "insert into %s", collection))
	}
	return id, nil
}

func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields docstore.Fields) error {
	patch, err := sonic.ConfigStd.Marshal(fields)
	if err != nil {
		return crerr.Wrapf(err, "encode %s patch", collection)
	}

	stmt, args, err := qb.Update(documentsTable).
		SetExpr("body", "body || ?::jsonb", string(patch)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("collection", collection), qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build update document query")
	}

	res, err := s.conn(ctx).ExecContext(ctx, stmt, args...)
	if err != nil {
		return mapError(crerr.Wrapf(err, "update %s/%s", collection, id))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "read affected rows")
	}
	if affected == 0 {
		return crerr.Wrapf(docstore.ErrNotFound, "%s/%s", collection, id)
	}
	return nil
}

func (s *DocumentStore) DeleteMany(ctx context.Context, collection string, query docstore.Query) (int64, error) {
	filter, err := encodeFilter(query)
	if err != nil {
		return 0, err
	}

	stmt, args, err := qb.DeleteFrom(documentsTable).
		Where(qb.Eq("collection", collection), qb.JSONContains("body", filter)).
		ToSQL()
	if err != nil {
		return 0, crerr.Wrap(err, "build delete documents query")
	}

	res, err := s.conn(ctx).ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, crerr.Wrapf(err, "delete from %s", collection)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, crerr.Wrap(err, "read affected rows")
	}
	return deleted, nil
}

func buildSelect(collection string, query docstore.Query, limit int) (string, []any, error) {
	filter, err := encodeFilter(query)
	if err != nil {
		return "", nil, err
	}

	stmt, args, err := qb.Select("id", "body").
		From(documentsTable).
		Where(qb.Eq("collection", collection), qb.JSONContains("body", filter)).
		OrderBy("seq").
		Limit(limit).
		ToSQL()
	if err != nil {
		return "", nil, crerr.Wrap(err, "build select documents query")
	}
	return stmt, args, nil
}

// encodeFilter renders a query with sorted keys so identical queries produce
// identical statements.
func encodeFilter(query docstore.Query) (string, error) {
	if len(query) == 0 {
		return "{}", nil
	}
	raw, err := sonic.ConfigStd.Marshal(query)
	if err != nil {
		return "", crerr.Wrap(err, "encode query")
	}
	return string(raw), nil
}

func mapError(err error) error {
	var pqErr *pq.Error
	if crerr.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return crerr.Mark(err, docstore.ErrDuplicate)
	}
	return err
}
