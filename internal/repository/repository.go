package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a document id does not exist in its collection.
var ErrNotFound = errors.New("entity not found")

// Document is a raw document read from a collection.
type Document struct {
	ID   string
	Data map[string]any
}

// Increment is a field value that the store applies as an atomic add rather
// than a plain write. Counter adjustments must use this, never a
// read-modify-write of the raw integer.
type Increment struct {
	Delta int64
}

// ListQuery describes one page of a descending creation-time listing.
// Cursor is the document id of the last item of the previous page; empty
// means the first page.
type ListQuery struct {
	OrderField string // defaults to "createdAt"
	PageSize   int
	Cursor     string
}

// Page is one page of documents. HasMore is a heuristic: a full page means
// there may be another one.
type Page struct {
	Items      []Document
	NextCursor string
	HasMore    bool
}

// Tx exposes the operations available inside a store transaction. All reads
// must happen before any write, per the backend's transaction contract.
type Tx interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	FindByField(ctx context.Context, collection, field string, value any) ([]Document, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
}

// EntityStore is the sole I/O boundary to the document database. Operations
// outside RunTransaction carry no cross-document atomicity guarantee.
type EntityStore interface {
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	List(ctx context.Context, collection string, q ListQuery) (*Page, error)
	FindByField(ctx context.Context, collection, field string, value any) ([]Document, error)
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
