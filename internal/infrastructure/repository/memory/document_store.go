package memory

import (
	"context"
	"reflect"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-stats/internal/platform/docstore"
	idgen "github.com/riskibarqy/cricket-stats/internal/platform/id"
)

type collection struct {
	order []string
	docs  map[string]map[string]any
}

// DocumentStore keeps documents in process memory. Bodies are held decoded so
// queries compare JSON values, the same way a real document store would.
type DocumentStore struct {
	mu          sync.RWMutex
	ids         idgen.Generator
	collections map[string]*collection
}

func NewDocumentStore(ids idgen.Generator) *DocumentStore {
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	return &DocumentStore{
		ids:         ids,
		collections: make(map[string]*collection),
	}
}

func (s *DocumentStore) FindOne(_ context.Context, name string, query docstore.Query) (docstore.Document, bool, error) {
	want, err := normalize(query)
	if err != nil {
		return docstore.Document{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coll := s.collections[name]
	if coll == nil {
		return docstore.Document{}, false, nil
	}
	for _, id := range coll.order {
		body := coll.docs[id]
		if matches(body, want) {
			doc, err := encode(id, body)
			return doc, err == nil, err
		}
	}
	return docstore.Document{}, false, nil
}

func (s *DocumentStore) FindMany(_ context.Context, name string, query docstore.Query) ([]docstore.Document, error) {
	want, err := normalize(query)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	coll := s.collections[name]
	if coll == nil {
		return []docstore.Document{}, nil
	}
	out := make([]docstore.Document, 0, len(coll.order))
	for _, id := range coll.order {
		body := coll.docs[id]
		if !matches(body, want) {
			continue
		}
		doc, err := encode(id, body)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *DocumentStore) Insert(_ context.Context, name string, body []byte) (string, error) {
	decoded := make(map[string]any)
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return "", crerr.Wrapf(err, "decode %s document", name)
	}
	id, err := s.ids.NewID()
	if err != nil {
		return "", crerr.Wrap(err, "generate document id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collections[name]
	if coll == nil {
		coll = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = coll
	}
	if _, exists := coll.docs[id]; exists {
		return "", crerr.Mark(crerr.Newf("%s/%s already exists", name, id), docstore.ErrDuplicate)
	}
	coll.docs[id] = decoded
	coll.order = append(coll.order, id)
	return id, nil
}

func (s *DocumentStore) Update(_ context.Context, name, id string, fields docstore.Fields) error {
	patch, err := normalize(fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collections[name]
	if coll == nil || coll.docs[id] == nil {
		return crerr.Wrapf(docstore.ErrNotFound, "%s/%s", name, id)
	}
	body := coll.docs[id]
	for key, value := range patch {
		body[key] = value
	}
	return nil
}

func (s *DocumentStore) DeleteMany(_ context.Context, name string, query docstore.Query) (int64, error) {
	want, err := normalize(query)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.collections[name]
	if coll == nil {
		return 0, nil
	}
	kept := coll.order[:0]
	var deleted int64
	for _, id := range coll.order {
		if matches(coll.docs[id], want) {
			delete(coll.docs, id)
			deleted++
			continue
		}
		kept = append(kept, id)
	}
	coll.order = kept
	return deleted, nil
}

// Count reports how many documents a collection holds.
func (s *DocumentStore) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if coll := s.collections[name]; coll != nil {
		return len(coll.order)
	}
	return 0
}

// normalize round-trips v through JSON so numbers and nested values compare
// equal to decoded bodies.
func normalize[M ~map[string]any](v M) (map[string]any, error) {
	out := make(map[string]any, len(v))
	if len(v) == 0 {
		return out, nil
	}
	raw, err := sonic.Marshal(v)
	if err != nil {
		return nil, crerr.Wrap(err, "encode query")
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, crerr.Wrap(err, "decode query")
	}
	return out, nil
}

func matches(body, want map[string]any) bool {
	for key, value := range want {
		got, ok := body[key]
		if !ok || !reflect.DeepEqual(got, value) {
			return false
		}
	}
	return true
}

func encode(id string, body map[string]any) (docstore.Document, error) {
	raw, err := sonic.Marshal(body)
	if err != nil {
		return docstore.Document{}, crerr.Wrapf(err, "encode document %s", id)
	}
	return docstore.Document{ID: id, Body: raw}, nil
}
