package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/logger"
	"fairway-backend/internal/repository"
)

// Result is the outcome surfaced to callers. The engine never propagates raw
// errors; every failure becomes Success=false with a display message the
// admin console can show verbatim.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Request holds the decided request document for callers that need
	// fan-out context, such as notifications. Nil on failure.
	Request map[string]any `json:"-"`
}

// errRequestNotFound distinguishes a missing request from a missing fan-out
// target; only the former reads as "not found" to the operator.
var errRequestNotFound = errors.New("request not found")

type alreadyReviewedError struct {
	status string
}

func (e *alreadyReviewedError) Error() string {
	return "request already " + e.status
}

// Engine executes the approve/reject transitions for one workflow kind. The
// fetch, the pending guard, and the full fan-out run inside a single store
// transaction, so a request can transition out of pending at most once and a
// club counter can be incremented at most once per request even under
// concurrent operators.
type Engine struct {
	store repository.EntityStore
	desc  Descriptor
	now   func() time.Time
	log   *slog.Logger
}

func NewEngine(store repository.EntityStore, desc Descriptor) *Engine {
	return &Engine{
		store: store,
		desc:  desc,
		now:   time.Now,
		log:   logger.WithWorkflow(string(desc.Kind)),
	}
}

// Approve transitions a pending request to approved and applies the fan-out:
// request stamp, subject assignment, aggregate counter, and any kind-specific
// profile/related-request updates.
func (e *Engine) Approve(ctx context.Context, requestID, reviewedBy string) Result {
	var reqData map[string]any

	err := e.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		req, err := e.fetchPending(ctx, tx, requestID)
		if err != nil {
			return err
		}
		reqData = req.Data
		now := e.now()

		// Transaction contract: all reads before any write.
		related, err := e.fetchRelated(ctx, tx, req.Data)
		if err != nil {
			return err
		}

		reqFields := map[string]any{
			"status":     string(domain.RequestStatusApproved),
			"reviewedBy": orNil(reviewedBy),
			"reviewedAt": now,
			"updatedAt":  now,
		}
		if e.desc.RequestApproveExtras != nil {
			for k, v := range e.desc.RequestApproveExtras(req.Data, now) {
				reqFields[k] = v
			}
		}
		if err := tx.Update(ctx, e.desc.RequestCollection, requestID, reqFields); err != nil {
			return err
		}

		subjectID, ok := stringField(req.Data, e.desc.SubjectIDField)
		if !ok {
			return fmt.Errorf("request %s has no %s", requestID, e.desc.SubjectIDField)
		}
		if err := tx.Update(ctx, e.desc.SubjectCollection, subjectID, e.desc.SubjectApproveFields(req.Data, now)); err != nil {
			return err
		}

		if e.desc.AggregateCollection != "" {
			if aggregateID, ok := stringField(req.Data, e.desc.AggregateIDField); ok {
				counter := map[string]any{
					e.desc.CounterField: repository.Increment{Delta: 1},
					"updatedAt":         now,
				}
				if err := tx.Update(ctx, e.desc.AggregateCollection, aggregateID, counter); err != nil {
					return err
				}
			}
		}

		if e.desc.ProfileCollection != "" {
			if profileID, ok := stringField(req.Data, e.desc.ProfileIDField); ok {
				if err := tx.Update(ctx, e.desc.ProfileCollection, profileID, e.desc.ProfileApproveFields(now)); err != nil {
					return err
				}
			}
		}

		for _, rel := range related {
			if err := tx.Update(ctx, e.desc.RelatedCollection, rel.ID, e.desc.RelatedApproveFields(now)); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return e.failure(ctx, "approve", requestID, err)
	}

	e.log.InfoContext(ctx, "request approved", "request_id", requestID, "reviewed_by", reviewedBy)
	msg := "Request approved successfully"
	if e.desc.ApprovedMessage != nil {
		msg = e.desc.ApprovedMessage(reqData)
	}
	return Result{Success: true, Message: msg, Request: reqData}
}

// Reject transitions a pending request to rejected. For most kinds only the
// request document changes; the verification kind also downgrades the coach,
// the user profile, and the coach's outstanding club requests.
func (e *Engine) Reject(ctx context.Context, requestID, reviewNote, reviewedBy string) Result {
	var reqData map[string]any

	err := e.store.RunTransaction(ctx, func(ctx context.Context, tx repository.Tx) error {
		req, err := e.fetchPending(ctx, tx, requestID)
		if err != nil {
			return err
		}
		reqData = req.Data
		now := e.now()

		related, err := e.fetchRelated(ctx, tx, req.Data)
		if err != nil {
			return err
		}

		reqFields := map[string]any{
			"status":     string(domain.RequestStatusRejected),
			"reviewedBy": orNil(reviewedBy),
			"reviewedAt": now,
			"reviewNote": orNil(reviewNote),
			"updatedAt":  now,
		}
		if err := tx.Update(ctx, e.desc.RequestCollection, requestID, reqFields); err != nil {
			return err
		}

		if e.desc.SubjectRejectFields != nil {
			subjectID, ok := stringField(req.Data, e.desc.SubjectIDField)
			if !ok {
				return fmt.Errorf("request %s has no %s", requestID, e.desc.SubjectIDField)
			}
			if err := tx.Update(ctx, e.desc.SubjectCollection, subjectID, e.desc.SubjectRejectFields(req.Data, now)); err != nil {
				return err
			}
		}

		if e.desc.ProfileCollection != "" && e.desc.ProfileRejectFields != nil {
			if profileID, ok := stringField(req.Data, e.desc.ProfileIDField); ok {
				if err := tx.Update(ctx, e.desc.ProfileCollection, profileID, e.desc.ProfileRejectFields(now)); err != nil {
					return err
				}
			}
		}

		if e.desc.RelatedRejectFields != nil {
			for _, rel := range related {
				if err := tx.Update(ctx, e.desc.RelatedCollection, rel.ID, e.desc.RelatedRejectFields(now)); err != nil {
					return err
				}
			}
		}
		return nil
	})

	if err != nil {
		return e.failure(ctx, "reject", requestID, err)
	}

	e.log.InfoContext(ctx, "request rejected", "request_id", requestID, "reviewed_by", reviewedBy)
	return Result{Success: true, Message: "Request rejected successfully", Request: reqData}
}

// fetchPending loads the request and enforces the pending guard. Both
// transitions share this path, so the guard exists in exactly one place.
func (e *Engine) fetchPending(ctx context.Context, tx repository.Tx, requestID string) (*repository.Document, error) {
	req, err := tx.Get(ctx, e.desc.RequestCollection, requestID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errRequestNotFound
	}
	if err != nil {
		return nil, err
	}
	if status := requestStatus(req.Data); status != string(domain.RequestStatusPending) {
		return nil, &alreadyReviewedError{status: status}
	}
	return req, nil
}

func (e *Engine) fetchRelated(ctx context.Context, tx repository.Tx, req map[string]any) ([]repository.Document, error) {
	if e.desc.RelatedCollection == "" {
		return nil, nil
	}
	matchValue, ok := stringField(req, e.desc.SubjectIDField)
	if !ok {
		return nil, nil
	}
	return tx.FindByField(ctx, e.desc.RelatedCollection, e.desc.RelatedMatchField, matchValue)
}

func (e *Engine) failure(ctx context.Context, op, requestID string, err error) Result {
	if errors.Is(err, errRequestNotFound) {
		return Result{Success: false, Message: "Request not found"}
	}
	var reviewed *alreadyReviewedError
	if errors.As(err, &reviewed) {
		return Result{Success: false, Message: "Request already " + reviewed.status}
	}
	e.log.ErrorContext(ctx, "request transition failed", "operation", op, "request_id", requestID, "error", err)
	return Result{Success: false, Message: fmt.Sprintf("Failed to %s request: %v", op, err)}
}

// requestStatus reads the status field; documents written before the status
// field existed are treated as pending, matching the decode layer.
func requestStatus(data map[string]any) string {
	if s, ok := data["status"].(string); ok && s != "" {
		return s
	}
	return string(domain.RequestStatusPending)
}

func stringField(data map[string]any, key string) (string, bool) {
	s, ok := data[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
