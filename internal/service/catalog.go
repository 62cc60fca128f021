package service

import (
	"context"
	"fmt"
	"time"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/repository"
)

type catalogService struct {
	store   repository.EntityStore
	allowed map[string]bool
}

func NewCatalogService(store repository.EntityStore) CatalogService {
	allowed := make(map[string]bool)
	for _, c := range domain.CatalogCollections() {
		allowed[c] = true
	}
	return &catalogService{store: store, allowed: allowed}
}

func (s *catalogService) List(ctx context.Context, collection string, pageSize int, cursor string) (*repository.Page, error) {
	if err := s.check(collection); err != nil {
		return nil, err
	}
	return s.store.List(ctx, collection, repository.ListQuery{PageSize: pageSize, Cursor: cursor})
}

func (s *catalogService) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	if err := s.check(collection); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, collection, id)
}

func (s *catalogService) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := s.check(collection); err != nil {
		return "", err
	}
	return s.store.Create(ctx, collection, fields)
}

func (s *catalogService) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := s.check(collection); err != nil {
		return err
	}
	doc := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["updatedAt"] = time.Now()
	return s.store.Update(ctx, collection, id, doc)
}

func (s *catalogService) Delete(ctx context.Context, collection, id string) error {
	if err := s.check(collection); err != nil {
		return err
	}
	return s.store.Delete(ctx, collection, id)
}

func (s *catalogService) check(collection string) error {
	if !s.allowed[collection] {
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}
