package jobs_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fairway-backend/internal/repository"
	"fairway-backend/internal/workflow"
)

// MockEntityStore
type MockEntityStore struct {
	mock.Mock
}

func (m *MockEntityStore) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Document), args.Error(1)
}
func (m *MockEntityStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	args := m.Called(ctx, collection, fields)
	return args.String(0), args.Error(1)
}
func (m *MockEntityStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}
func (m *MockEntityStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
func (m *MockEntityStore) List(ctx context.Context, collection string, q repository.ListQuery) (*repository.Page, error) {
	args := m.Called(ctx, collection, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page), args.Error(1)
}
func (m *MockEntityStore) FindByField(ctx context.Context, collection, field string, value any) ([]repository.Document, error) {
	args := m.Called(ctx, collection, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Document), args.Error(1)
}
func (m *MockEntityStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendDecisionNotification(ctx context.Context, kind workflow.Kind, requestID, decision, message string) error {
	args := m.Called(ctx, kind, requestID, decision, message)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingDigest(ctx context.Context, counts map[string]int) error {
	args := m.Called(ctx, counts)
	return args.Error(0)
}
