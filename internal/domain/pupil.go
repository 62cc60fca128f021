package domain

import (
	"time"

	"fairway-backend/internal/firetime"
)

// Pupil mirrors both its coach assignment and, when the coach belongs to a
// club, the club assignment. Both mirrors are written only by the workflow
// engine when a pupil-to-coach request is approved.
type Pupil struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic,omitempty"`
	Handicap   string `json:"handicap,omitempty"`

	SelectedCoachID   string `json:"selectedCoachId,omitempty"`
	SelectedCoachName string `json:"selectedCoachName,omitempty"`

	AssignedCoachID   string     `json:"assignedCoachId,omitempty"`
	AssignedCoachName string     `json:"assignedCoachName,omitempty"`
	CoachAssignedAt   *time.Time `json:"coachAssignedAt,omitempty"`
	AssignmentStatus  string     `json:"assignmentStatus,omitempty"`

	AssignedClubID       string     `json:"assignedClubId,omitempty"`
	AssignedClubName     string     `json:"assignedClubName,omitempty"`
	ClubAssignedAt       *time.Time `json:"clubAssignedAt,omitempty"`
	ClubAssignmentStatus string     `json:"clubAssignmentStatus,omitempty"`

	CurrentLevel int64 `json:"currentLevel"`
	TotalXP      int64 `json:"totalXP"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func PupilFromDoc(id string, data map[string]any) Pupil {
	return Pupil{
		ID:         id,
		Name:       docString(data, "name"),
		ProfilePic: docString(data, "profilePic"),
		Handicap:   docString(data, "handicap"),

		SelectedCoachID:   docString(data, "selectedCoachId"),
		SelectedCoachName: docString(data, "selectedCoachName"),

		AssignedCoachID:   docString(data, "assignedCoachId"),
		AssignedCoachName: docString(data, "assignedCoachName"),
		CoachAssignedAt:   firetime.ToTimePtr(data["coachAssignedAt"]),
		AssignmentStatus:  docString(data, "assignmentStatus"),

		AssignedClubID:       docString(data, "assignedClubId"),
		AssignedClubName:     docString(data, "assignedClubName"),
		ClubAssignedAt:       firetime.ToTimePtr(data["clubAssignedAt"]),
		ClubAssignmentStatus: docString(data, "clubAssignmentStatus"),

		CurrentLevel: docInt64(data, "currentLevel", 1),
		TotalXP:      docInt64(data, "totalXP", 0),

		CreatedAt: firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt: firetime.ToTimeOrNow(data["updatedAt"]),
	}
}
