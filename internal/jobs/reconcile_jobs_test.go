package jobs_test

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"fairway-backend/internal/config"
	"fairway-backend/internal/domain"
	"fairway-backend/internal/jobs"
	"fairway-backend/internal/repository"
)

func jobConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Workflow.PageSize = 10
	return cfg
}

func TestReconcileClubCounters_RepairsDrift(t *testing.T) {
	store := new(MockEntityStore)
	runner := jobs.NewJobRunner(store, nil, jobConfig())

	// Stored counters say 5 coaches and 0 pupils; the actual documents say 1
	// assigned coach and 1 approved pupil.
	store.On("List", mock.Anything, domain.CollectionClubs, mock.Anything).
		Return(&repository.Page{
			Items: []repository.Document{
				{ID: "club1", Data: map[string]any{
					"name": "Acme Golf", "totalCoaches": int64(5), "totalPupils": int64(0),
				}},
			},
			HasMore: false,
		}, nil)
	store.On("FindByField", mock.Anything, domain.CollectionCoaches, "assignedClubId", "club1").
		Return([]repository.Document{
			{ID: "c1", Data: map[string]any{"assignedClubId": "club1", "clubAssignmentStatus": "assigned"}},
			{ID: "c2", Data: map[string]any{"assignedClubId": "club1", "clubAssignmentStatus": "rejected"}},
		}, nil)
	store.On("FindByField", mock.Anything, domain.CollectionPupils, "assignedClubId", "club1").
		Return([]repository.Document{
			{ID: "p1", Data: map[string]any{"assignedClubId": "club1", "clubAssignmentStatus": "approved"}},
		}, nil)
	store.On("Update", mock.Anything, domain.CollectionClubs, "club1", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["totalCoaches"] == int64(1) && fields["totalPupils"] == int64(1)
	})).Return(nil)

	runner.ReconcileClubCounters()
	store.AssertExpectations(t)
}

func TestReconcileClubCounters_NoDriftNoWrite(t *testing.T) {
	store := new(MockEntityStore)
	runner := jobs.NewJobRunner(store, nil, jobConfig())

	store.On("List", mock.Anything, domain.CollectionClubs, mock.Anything).
		Return(&repository.Page{
			Items: []repository.Document{
				{ID: "club1", Data: map[string]any{
					"name": "Acme Golf", "totalCoaches": int64(1), "totalPupils": int64(0),
				}},
			},
			HasMore: false,
		}, nil)
	store.On("FindByField", mock.Anything, domain.CollectionCoaches, "assignedClubId", "club1").
		Return([]repository.Document{
			{ID: "c1", Data: map[string]any{"assignedClubId": "club1", "clubAssignmentStatus": "assigned"}},
		}, nil)
	store.On("FindByField", mock.Anything, domain.CollectionPupils, "assignedClubId", "club1").
		Return([]repository.Document{}, nil)

	runner.ReconcileClubCounters()
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
