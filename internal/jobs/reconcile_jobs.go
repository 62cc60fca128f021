package jobs

import (
	"context"

	"fairway-backend/internal/domain"
	"fairway-backend/internal/logger"
	"fairway-backend/internal/repository"
)

// ReconcileClubCounters recounts each club's assigned coaches and pupils and
// repairs totalCoaches/totalPupils when they have drifted. Drift can only be
// introduced by writers outside the workflow engine; approvals themselves
// update the counters atomically.
func (jr *JobRunner) ReconcileClubCounters() {
	jr.runWithRecovery("ReconcileClubCounters", jr.reconcileClubCounters)
}

func (jr *JobRunner) reconcileClubCounters() {
	ctx := context.Background()

	cursor := ""
	var checked, repaired int
	for {
		page, err := jr.store.List(ctx, domain.CollectionClubs, repository.ListQuery{
			PageSize: jr.config.Workflow.PageSize,
			Cursor:   cursor,
		})
		if err != nil {
			logger.Error("Failed to list clubs", "error", err)
			return
		}

		for _, doc := range page.Items {
			club := domain.ClubFromDoc(doc.ID, doc.Data)
			fixed, err := jr.reconcileClub(ctx, club)
			if err != nil {
				logger.Error("Failed to reconcile club", "club_id", club.ID, "error", err)
				continue
			}
			checked++
			if fixed {
				repaired++
			}
		}

		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}

	logger.Info("Club counter reconciliation finished", "checked", checked, "repaired", repaired)
}

func (jr *JobRunner) reconcileClub(ctx context.Context, club domain.Club) (bool, error) {
	coachDocs, err := jr.store.FindByField(ctx, domain.CollectionCoaches, "assignedClubId", club.ID)
	if err != nil {
		return false, err
	}
	var coaches int64
	for _, d := range coachDocs {
		c := domain.CoachFromDoc(d.ID, d.Data)
		if c.ClubAssignmentStatus == "assigned" || c.ClubAssignmentStatus == "approved" {
			coaches++
		}
	}

	pupilDocs, err := jr.store.FindByField(ctx, domain.CollectionPupils, "assignedClubId", club.ID)
	if err != nil {
		return false, err
	}
	var pupils int64
	for _, d := range pupilDocs {
		p := domain.PupilFromDoc(d.ID, d.Data)
		if p.ClubAssignmentStatus == "approved" {
			pupils++
		}
	}

	if coaches == club.TotalCoaches && pupils == club.TotalPupils {
		return false, nil
	}

	logger.Warn("Club counters drifted, repairing",
		"club_id", club.ID,
		"total_coaches", club.TotalCoaches, "actual_coaches", coaches,
		"total_pupils", club.TotalPupils, "actual_pupils", pupils)

	err = jr.store.Update(ctx, domain.CollectionClubs, club.ID, map[string]any{
		"totalCoaches": coaches,
		"totalPupils":  pupils,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
