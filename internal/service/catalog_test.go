package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/service"
)

func TestCatalogService_RejectsUnknownCollections(t *testing.T) {
	store := new(MockEntityStore)
	svc := service.NewCatalogService(store)
	ctx := context.Background()

	_, err := svc.Get(ctx, "secrets", "x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")

	// Request collections are only reachable through the workflow endpoints.
	_, err = svc.List(ctx, domain.CollectionCoachToClubRequests, 10, "")
	assert.Error(t, err)

	store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateStampsUpdatedAt(t *testing.T) {
	store := new(MockEntityStore)
	svc := service.NewCatalogService(store)
	ctx := context.Background()

	store.On("Update", ctx, domain.CollectionClubs, "club1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["name"] == "Acme Golf" && fields["updatedAt"] != nil
	})).Return(nil)

	err := svc.Update(ctx, domain.CollectionClubs, "club1", map[string]any{"name": "Acme Golf"})
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCatalogService_DelegatesToStore(t *testing.T) {
	store := new(MockEntityStore)
	svc := service.NewCatalogService(store)
	ctx := context.Background()

	store.On("Create", ctx, domain.CollectionBooks, mock.Anything).Return("b1", nil)
	store.On("Get", ctx, domain.CollectionBooks, "b1").
		Return(&repository.Document{ID: "b1", Data: map[string]any{"title": "Short Game"}}, nil)
	store.On("Delete", ctx, domain.CollectionBooks, "b1").Return(nil)

	id, err := svc.Create(ctx, domain.CollectionBooks, map[string]any{"title": "Short Game"})
	assert.NoError(t, err)
	assert.Equal(t, "b1", id)

	doc, err := svc.Get(ctx, domain.CollectionBooks, "b1")
	assert.NoError(t, err)
	assert.Equal(t, "Short Game", doc.Data["title"])

	assert.NoError(t, svc.Delete(ctx, domain.CollectionBooks, "b1"))
	store.AssertExpectations(t)
}
