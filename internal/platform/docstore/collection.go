package docstore

import (
	"context"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/platform/validation"
)

// Collection binds a Store collection to one record type. Records are
// validated before every insert and decoded with sonic on the way out.
type Collection[T any] struct {
	store Store
	name  string
	setID func(*T, string)
}

func NewCollection[T any](store Store, name string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{store: store, name: name, setID: setID}
}

func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) FindOne(ctx context.Context, query Query) (T, bool, error) {
	var out T
	doc, ok, err := c.store.FindOne(ctx, c.name, query)
	if err != nil {
		return out, false, crerr.Wrapf(err, "find one in %s", c.name)
	}
	if !ok {
		return out, false, nil
	}
	out, err = c.decode(doc)
	if err != nil {
		return out, false, err
	}
	return out, true, nil
}

func (c *Collection[T]) FindMany(ctx context.Context, query Query) ([]T, error) {
	docs, err := c.store.FindMany(ctx, c.name, query)
	if err != nil {
		return nil, crerr.Wrapf(err, "find many in %s", c.name)
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		item, err := c.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// Insert validates item, stores it and returns it carrying the generated id.
func (c *Collection[T]) Insert(ctx context.Context, item T) (T, error) {
	if err := validation.Struct(item); err != nil {
		return item, crerr.Wrapf(err, "insert into %s", c.name)
	}

	body, err := sonic.Marshal(item)
	if err != nil {
		return item, crerr.Wrapf(err, "encode %s document", c.name)
	}

	id, err := c.store.Insert(ctx, c.name, body)
	if err != nil {
		return item, crerr.Wrapf(err, "insert into %s", c.name)
	}
	c.setID(&item, id)
	return item, nil
}

func (c *Collection[T]) Update(ctx context.Context, id string, fields Fields) error {
	if id == "" {
		return crerr.Newf("update %s: id is required", c.name)
	}
	if len(fields) == 0 {
		return nil
	}
	if err := c.store.Update(ctx, c.name, id, fields); err != nil {
		return crerr.Wrapf(err, "update %s/%s", c.name, id)
	}
	return nil
}

func (c *Collection[T]) DeleteMany(ctx context.Context, query Query) (int64, error) {
	n, err := c.store.DeleteMany(ctx, c.name, query)
	if err != nil {
		return 0, crerr.Wrapf(err, "delete from %s", c.name)
	}
	return n, nil
}

func (c *Collection[T]) decode(doc Document) (T, error) {
	var out T
	if err := sonic.Unmarshal(doc.Body, &out); err != nil {
		return out, crerr.Wrapf(err, "decode %s document %s", c.name, doc.ID)
	}
	c.setID(&out, doc.ID)
	return out, nil
}
