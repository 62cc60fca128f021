package jobs

import (
	"context"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/logger"
	"fairway-backend/internal/workflow"
)

// SendPendingRequestDigest emails the admin a count of requests awaiting
// review across all three request collections.
func (jr *JobRunner) SendPendingRequestDigest() {
	jr.runWithRecovery("SendPendingRequestDigest", jr.sendPendingRequestDigest)
}

func (jr *JobRunner) sendPendingRequestDigest() {
	if jr.email == nil {
		logger.Info("Email not configured, skipping pending request digest")
		return
	}

	ctx := context.Background()
	counts := make(map[string]int)
	var total int

	for _, desc := range workflow.Descriptors() {
		docs, err := jr.store.FindByField(ctx, desc.RequestCollection, "status", string(domain.RequestStatusPending))
		if err != nil {
			logger.Error("Failed to count pending requests", "collection", desc.RequestCollection, "error", err)
			return
		}
		counts[desc.RequestCollection] = len(docs)
		total += len(docs)
	}

	if total == 0 {
		logger.Info("No pending requests, skipping digest")
		return
	}

	if err := jr.email.SendPendingDigest(ctx, counts); err != nil {
		logger.Error("Failed to send pending request digest", "error", err)
		return
	}
	logger.Info("Pending request digest sent", "total", total)
}
