package service

import (
	"context"

	"fairway-backend/internal/repository"
	"fairway-backend/internal/workflow"
)

type AdminService interface {
	ApproveRequest(ctx context.Context, kind workflow.Kind, requestID, reviewedBy string) workflow.Result
	RejectRequest(ctx context.Context, kind workflow.Kind, requestID, reviewNote, reviewedBy string) workflow.Result
	ListRequests(ctx context.Context, kind workflow.Kind, pageSize int, cursor string) (*repository.Page, error)
	GetRequest(ctx context.Context, kind workflow.Kind, requestID string) (*repository.Document, error)
	CreateRequest(ctx context.Context, kind workflow.Kind, fields map[string]any) (string, error)
	DeleteRequest(ctx context.Context, kind workflow.Kind, requestID string) error
}

// CatalogService is plain CRUD over the non-workflow collections (clubs,
// coaches, pupils and the learning content). It implements no transition
// logic.
type CatalogService interface {
	List(ctx context.Context, collection string, pageSize int, cursor string) (*repository.Page, error)
	Get(ctx context.Context, collection, id string) (*repository.Document, error)
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

type EmailService interface {
	SendDecisionNotification(ctx context.Context, kind workflow.Kind, requestID, decision, message string) error
	SendPendingDigest(ctx context.Context, counts map[string]int) error
}
