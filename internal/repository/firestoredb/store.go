// Package firestoredb implements the generic entity store on Cloud Firestore.
package firestoredb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fairway-backend/internal/logger"
	"fairway-backend/internal/repository"
)

const defaultOrderField = "createdAt"

// NewClient builds a Firestore client through the Firebase app bootstrap.
// credentialsFile may be empty, in which case application default credentials
// are used.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}
	return client, nil
}

// Store implements repository.EntityStore on a Firestore client.
type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	logger.StoreCall("get", collection, "id", id)
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		logger.StoreResult("get", collection, err, "id", id)
		return nil, mapError(collection, id, err)
	}
	logger.StoreResult("get", collection, nil, "id", id)
	return &repository.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	data := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		data[k] = translateValue(v)
	}
	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = firestore.ServerTimestamp
	}

	logger.StoreCall("create", collection, "id", id)
	_, err := s.client.Collection(collection).Doc(id).Create(ctx, data)
	logger.StoreResult("create", collection, err, "id", id)
	if err != nil {
		return "", fmt.Errorf("failed to create document in %s: %w", collection, err)
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	logger.StoreCall("update", collection, "id", id)
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, toUpdates(fields))
	logger.StoreResult("update", collection, err, "id", id)
	if err != nil {
		return mapError(collection, id, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	logger.StoreCall("delete", collection, "id", id)
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	logger.StoreResult("delete", collection, err, "id", id)
	if err != nil {
		return mapError(collection, id, err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, collection string, q repository.ListQuery) (*repository.Page, error) {
	orderField := q.OrderField
	if orderField == "" {
		orderField = defaultOrderField
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}

	query := s.client.Collection(collection).OrderBy(orderField, firestore.Desc).Limit(pageSize)
	if q.Cursor != "" {
		// The cursor is the id of the last document of the previous page;
		// resume after its ordering value.
		cursorSnap, err := s.client.Collection(collection).Doc(q.Cursor).Get(ctx)
		if err != nil {
			return nil, mapError(collection, q.Cursor, err)
		}
		query = query.StartAfter(cursorSnap.Data()[orderField])
	}

	logger.StoreCall("list", collection, "page_size", pageSize, "cursor", q.Cursor)
	docs, err := query.Documents(ctx).GetAll()
	logger.StoreResult("list", collection, err)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", collection, err)
	}

	page := &repository.Page{
		Items:   make([]repository.Document, 0, len(docs)),
		HasMore: len(docs) == pageSize,
	}
	for _, d := range docs {
		page.Items = append(page.Items, repository.Document{ID: d.Ref.ID, Data: d.Data()})
	}
	if len(docs) > 0 {
		page.NextCursor = docs[len(docs)-1].Ref.ID
	}
	return page, nil
}

func (s *Store) FindByField(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	logger.StoreCall("find", collection, "field", field)
	iter := s.client.Collection(collection).Where(field, "==", value).Documents(ctx)
	docs, err := collect(iter)
	logger.StoreResult("find", collection, err, "field", field)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	return docs, nil
}

func (s *Store) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	return s.client.RunTransaction(ctx, func(ctx context.Context, t *firestore.Transaction) error {
		return fn(ctx, &storeTx{client: s.client, tx: t})
	})
}

// storeTx adapts a Firestore transaction to repository.Tx. Firestore queues
// writes and applies them at commit, after all reads.
type storeTx struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (t *storeTx) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	snap, err := t.tx.Get(t.client.Collection(collection).Doc(id))
	if err != nil {
		return nil, mapError(collection, id, err)
	}
	return &repository.Document{ID: snap.Ref.ID, Data: snap.Data()}, nil
}

func (t *storeTx) FindByField(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	iter := t.tx.Documents(t.client.Collection(collection).Where(field, "==", value))
	docs, err := collect(iter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by %s: %w", collection, field, err)
	}
	return docs, nil
}

func (t *storeTx) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := t.tx.Update(t.client.Collection(collection).Doc(id), toUpdates(fields)); err != nil {
		return mapError(collection, id, err)
	}
	return nil
}

func collect(iter *firestore.DocumentIterator) ([]repository.Document, error) {
	defer iter.Stop()
	var docs []repository.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, repository.Document{ID: snap.Ref.ID, Data: snap.Data()})
	}
}

func toUpdates(fields map[string]any) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields))
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: translateValue(v)})
	}
	return updates
}

// translateValue maps store-level sentinel values to their Firestore
// primitives.
func translateValue(v any) any {
	if inc, ok := v.(repository.Increment); ok {
		return firestore.Increment(inc.Delta)
	}
	return v
}

func mapError(collection, id string, err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s/%s: %w", collection, id, repository.ErrNotFound)
	}
	return fmt.Errorf("store call on %s/%s failed: %w", collection, id, err)
}
