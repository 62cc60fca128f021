package domain

import (
	"time"

	"fairway-backend/internal/firetime"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusRejected VerificationStatus = "rejected"
)

// Coach carries denormalized copies of its latest approved club assignment so
// listings avoid joins. The workflow engine is the only writer of the
// assigned* fields.
type Coach struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"`

	SelectedClubID   string `json:"selectedClubId,omitempty"`
	SelectedClubName string `json:"selectedClubName,omitempty"`

	AssignedClubID       string     `json:"assignedClubId,omitempty"`
	AssignedClubName     string     `json:"assignedClubName,omitempty"`
	ClubAssignedAt       *time.Time `json:"clubAssignedAt,omitempty"`
	ClubAssignmentStatus string     `json:"clubAssignmentStatus,omitempty"`

	VerificationStatus VerificationStatus `json:"verificationStatus"`
	VerifiedAt         *time.Time         `json:"verifiedAt,omitempty"`

	MaxPupils          int64 `json:"maxPupils"`
	CurrentPupils      int64 `json:"currentPupils"`
	AcceptingNewPupils bool  `json:"acceptingNewPupils"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func CoachFromDoc(id string, data map[string]any) Coach {
	status := VerificationStatus(docString(data, "verificationStatus"))
	if status == "" {
		status = VerificationStatusPending
	}
	return Coach{
		ID:         id,
		Name:       docString(data, "name"),
		ProfilePic: docString(data, "profilePic"),

		SelectedClubID:   docString(data, "selectedClubId"),
		SelectedClubName: docString(data, "selectedClubName"),

		AssignedClubID:       docString(data, "assignedClubId"),
		AssignedClubName:     docString(data, "assignedClubName"),
		ClubAssignedAt:       firetime.ToTimePtr(data["clubAssignedAt"]),
		ClubAssignmentStatus: docString(data, "clubAssignmentStatus"),

		VerificationStatus: status,
		VerifiedAt:         firetime.ToTimePtr(data["verifiedAt"]),

		MaxPupils:          docInt64(data, "maxPupils", 20),
		CurrentPupils:      docInt64(data, "currentPupils", 0),
		AcceptingNewPupils: docBool(data, "acceptingNewPupils", true),

		CreatedAt: firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt: firetime.ToTimeOrNow(data["updatedAt"]),
	}
}
