package workflow_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fairway-backend/internal/repository"
)

// memStore is an in-memory EntityStore with the same transaction semantics
// as the real backend: reads see committed state, writes queue and apply
// only when the transaction function returns nil.
type memStore struct {
	mu   sync.Mutex
	data map[string]map[string]map[string]any
	seq  int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]map[string]map[string]any)}
}

func (s *memStore) seed(collection, id string, fields map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}
	s.data[collection][id] = copyDoc(fields)
}

// doc returns a committed document copy for assertions.
func (s *memStore) doc(collection, id string) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.data[collection][id]; ok {
		return copyDoc(d)
	}
	return nil
}

func (s *memStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(collection, id)
}

func (s *memStore) getLocked(collection, id string) (*repository.Document, error) {
	d, ok := s.data[collection][id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, repository.ErrNotFound)
	}
	return &repository.Document{ID: id, Data: copyDoc(d)}, nil
}

func (s *memStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	id := fmt.Sprintf("gen-%d", s.seq)
	doc := copyDoc(fields)
	if _, ok := doc["createdAt"]; !ok {
		doc["createdAt"] = time.Now()
	}
	if s.data[collection] == nil {
		s.data[collection] = make(map[string]map[string]any)
	}
	s.data[collection][id] = doc
	return id, nil
}

func (s *memStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(writeOp{collection: collection, id: id, fields: fields})
}

func (s *memStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data[collection], id)
	return nil
}

func (s *memStore) List(ctx context.Context, collection string, q repository.ListQuery) (*repository.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []repository.Document
	for id, d := range s.data[collection] {
		items = append(items, repository.Document{ID: id, Data: copyDoc(d)})
	}
	return &repository.Page{Items: items}, nil
}

func (s *memStore) FindByField(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findLocked(collection, field, value)
}

func (s *memStore) findLocked(collection, field string, value any) ([]repository.Document, error) {
	var docs []repository.Document
	for id, d := range s.data[collection] {
		if d[field] == value {
			docs = append(docs, repository.Document{ID: id, Data: copyDoc(d)})
		}
	}
	return docs, nil
}

func (s *memStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	for _, op := range tx.writes {
		if err := s.applyLocked(op); err != nil {
			return err
		}
	}
	return nil
}

type writeOp struct {
	collection string
	id         string
	fields     map[string]any
}

type memTx struct {
	store  *memStore
	writes []writeOp
}

func (t *memTx) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	return t.store.getLocked(collection, id)
}

func (t *memTx) FindByField(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	return t.store.findLocked(collection, field, value)
}

func (t *memTx) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, ok := t.store.data[collection][id]; !ok {
		return fmt.Errorf("%s/%s: %w", collection, id, repository.ErrNotFound)
	}
	t.writes = append(t.writes, writeOp{collection: collection, id: id, fields: fields})
	return nil
}

func (s *memStore) applyLocked(op writeOp) error {
	doc, ok := s.data[op.collection][op.id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", op.collection, op.id, repository.ErrNotFound)
	}
	for k, v := range op.fields {
		if inc, isInc := v.(repository.Increment); isInc {
			current, _ := doc[k].(int64)
			doc[k] = current + inc.Delta
			continue
		}
		doc[k] = v
	}
	return nil
}

func copyDoc(d map[string]any) map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
