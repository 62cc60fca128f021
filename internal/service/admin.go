package service

import (
	"context"
	"fmt"
	"time"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/logger"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/workflow"
)

type adminService struct {
	engines  map[workflow.Kind]*workflow.Engine
	descs    map[workflow.Kind]workflow.Descriptor
	store    repository.EntityStore
	emailSvc EmailService // nil when email is not configured
}

func NewAdminService(store repository.EntityStore, emailSvc EmailService) AdminService {
	descs := workflow.Descriptors()
	engines := make(map[workflow.Kind]*workflow.Engine, len(descs))
	for kind, desc := range descs {
		engines[kind] = workflow.NewEngine(store, desc)
	}
	return &adminService{
		engines:  engines,
		descs:    descs,
		store:    store,
		emailSvc: emailSvc,
	}
}

func (s *adminService) ApproveRequest(ctx context.Context, kind workflow.Kind, requestID, reviewedBy string) workflow.Result {
	engine, ok := s.engines[kind]
	if !ok {
		return workflow.Result{Success: false, Message: fmt.Sprintf("Unknown request kind %q", kind)}
	}

	res := engine.Approve(ctx, requestID, reviewedBy)
	s.notify(ctx, kind, requestID, string(domain.RequestStatusApproved), res)
	return res
}

func (s *adminService) RejectRequest(ctx context.Context, kind workflow.Kind, requestID, reviewNote, reviewedBy string) workflow.Result {
	engine, ok := s.engines[kind]
	if !ok {
		return workflow.Result{Success: false, Message: fmt.Sprintf("Unknown request kind %q", kind)}
	}

	res := engine.Reject(ctx, requestID, reviewNote, reviewedBy)
	s.notify(ctx, kind, requestID, string(domain.RequestStatusRejected), res)
	return res
}

// notify sends a best-effort decision notification; failures never affect the
// workflow result.
func (s *adminService) notify(ctx context.Context, kind workflow.Kind, requestID, decision string, res workflow.Result) {
	if !res.Success || s.emailSvc == nil {
		return
	}
	if err := s.emailSvc.SendDecisionNotification(ctx, kind, requestID, decision, res.Message); err != nil {
		logger.Warn("failed to send decision notification", "kind", kind, "request_id", requestID, "error", err)
	}
}

func (s *adminService) ListRequests(ctx context.Context, kind workflow.Kind, pageSize int, cursor string) (*repository.Page, error) {
	desc, ok := s.descs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown request kind %q", kind)
	}
	return s.store.List(ctx, desc.RequestCollection, repository.ListQuery{
		PageSize: pageSize,
		Cursor:   cursor,
	})
}

func (s *adminService) GetRequest(ctx context.Context, kind workflow.Kind, requestID string) (*repository.Document, error) {
	desc, ok := s.descs[kind]
	if !ok {
		return nil, fmt.Errorf("unknown request kind %q", kind)
	}
	return s.store.Get(ctx, desc.RequestCollection, requestID)
}

// CreateRequest opens a pending request on behalf of a client. The review
// fields stay unset until the workflow engine decides the request.
func (s *adminService) CreateRequest(ctx context.Context, kind workflow.Kind, fields map[string]any) (string, error) {
	desc, ok := s.descs[kind]
	if !ok {
		return "", fmt.Errorf("unknown request kind %q", kind)
	}
	if id, _ := fields[desc.SubjectIDField].(string); id == "" {
		return "", fmt.Errorf("%s is required", desc.SubjectIDField)
	}

	now := time.Now()
	doc := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		doc[k] = v
	}
	doc["status"] = string(domain.RequestStatusPending)
	doc["requestedAt"] = now
	doc["updatedAt"] = now
	delete(doc, "reviewedBy")
	delete(doc, "reviewedAt")
	delete(doc, "reviewNote")
	delete(doc, "processed")

	return s.store.Create(ctx, desc.RequestCollection, doc)
}

// DeleteRequest is a plain store delete offered by the console pages; it is
// not a workflow transition.
func (s *adminService) DeleteRequest(ctx context.Context, kind workflow.Kind, requestID string) error {
	desc, ok := s.descs[kind]
	if !ok {
		return fmt.Errorf("unknown request kind %q", kind)
	}
	return s.store.Delete(ctx, desc.RequestCollection, requestID)
}
