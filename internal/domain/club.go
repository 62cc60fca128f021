package domain

import (
	"time"

	"fairway-backend/internal/firetime"
)

// Club is the aggregate root for coach/pupil counters. TotalCoaches and
// TotalPupils are incremented exactly once per approved assignment request
// and are never decremented (there is no un-assignment flow).
type Club struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contactEmail"`
	IsActive     bool      `json:"isActive"`
	TotalCoaches int64     `json:"totalCoaches"`
	TotalPupils  int64     `json:"totalPupils"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ClubFromDoc(id string, data map[string]any) Club {
	return Club{
		ID:           id,
		Name:         docString(data, "name"),
		Location:     docString(data, "location"),
		Description:  docString(data, "description"),
		ContactEmail: docString(data, "contactEmail"),
		IsActive:     docBool(data, "isActive", true),
		TotalCoaches: docInt64(data, "totalCoaches", 0),
		TotalPupils:  docInt64(data, "totalPupils", 0),
		CreatedAt:    firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt:    firetime.ToTimeOrNow(data["updatedAt"]),
	}
}
