package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fairway-backend/internal/repository"
	"fairway-backend/internal/workflow"
)

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ApproveRequest(ctx context.Context, kind workflow.Kind, requestID, reviewedBy string) workflow.Result {
	args := m.Called(ctx, kind, requestID, reviewedBy)
	return args.Get(0).(workflow.Result)
}
func (m *MockAdminService) RejectRequest(ctx context.Context, kind workflow.Kind, requestID, reviewNote, reviewedBy string) workflow.Result {
	args := m.Called(ctx, kind, requestID, reviewNote, reviewedBy)
	return args.Get(0).(workflow.Result)
}
func (m *MockAdminService) ListRequests(ctx context.Context, kind workflow.Kind, pageSize int, cursor string) (*repository.Page, error) {
	args := m.Called(ctx, kind, pageSize, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page), args.Error(1)
}
func (m *MockAdminService) GetRequest(ctx context.Context, kind workflow.Kind, requestID string) (*repository.Document, error) {
	args := m.Called(ctx, kind, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Document), args.Error(1)
}
func (m *MockAdminService) CreateRequest(ctx context.Context, kind workflow.Kind, fields map[string]any) (string, error) {
	args := m.Called(ctx, kind, fields)
	return args.String(0), args.Error(1)
}
func (m *MockAdminService) DeleteRequest(ctx context.Context, kind workflow.Kind, requestID string) error {
	args := m.Called(ctx, kind, requestID)
	return args.Error(0)
}

// MockCatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, collection string, pageSize int, cursor string) (*repository.Page, error) {
	args := m.Called(ctx, collection, pageSize, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page), args.Error(1)
}
func (m *MockCatalogService) Get(ctx context.Context, collection, id string) (*repository.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Document), args.Error(1)
}
func (m *MockCatalogService) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	args := m.Called(ctx, collection, fields)
	return args.String(0), args.Error(1)
}
func (m *MockCatalogService) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}
func (m *MockCatalogService) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
