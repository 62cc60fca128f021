package domain

import (
	"time"

	"fairway-backend/internal/firetime"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// CoachToClubRequest is a coach's pending application to join a club.
type CoachToClubRequest struct {
	ID          string        `json:"id"`
	CoachID     string        `json:"coachId"`
	CoachName   string        `json:"coachName"`
	ClubID      string        `json:"clubId"`
	ClubName    string        `json:"clubName"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requestedAt"`
	ReviewedBy  *string       `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
	ReviewNote  *string       `json:"reviewNote,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// PupilToCoachRequest is a pupil's pending application to be assigned a coach.
// Processed marks whether the approval fan-out (pupil + club updates) has been
// applied; it is distinct from Status so the fan-out is never applied twice.
type PupilToCoachRequest struct {
	ID        string `json:"id"`
	PupilID   string `json:"pupilId"`
	PupilName string `json:"pupilName"`
	CoachID   string `json:"coachId"`
	CoachName string `json:"coachName"`
	ClubID    string `json:"clubId,omitempty"`
	ClubName  string `json:"clubName,omitempty"`

	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requestedAt"`
	ReviewedBy  *string       `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
	ReviewNote  *string       `json:"reviewNote,omitempty"`
	Processed   bool          `json:"processed"`

	// Assignment fields mirrored into the request on approval so listings can
	// display them without a join.
	AssignedClubID       string     `json:"assignedClubId,omitempty"`
	AssignedClubName     string     `json:"assignedClubName,omitempty"`
	ClubAssignedAt       *time.Time `json:"clubAssignedAt,omitempty"`
	ClubAssignmentStatus string     `json:"clubAssignmentStatus,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CoachVerificationRequest is a coach's pending identity/credential check.
type CoachVerificationRequest struct {
	ID          string        `json:"id"`
	CoachID     string        `json:"coachId"`
	CoachName   string        `json:"coachName"`
	UserID      string        `json:"userId,omitempty"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status"`
	RequestedAt time.Time     `json:"requestedAt"`
	ReviewedBy  *string       `json:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time    `json:"reviewedAt,omitempty"`
	ReviewNote  *string       `json:"reviewNote,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func CoachToClubRequestFromDoc(id string, data map[string]any) CoachToClubRequest {
	return CoachToClubRequest{
		ID:          id,
		CoachID:     docString(data, "coachId"),
		CoachName:   docString(data, "coachName"),
		ClubID:      docString(data, "clubId"),
		ClubName:    docString(data, "clubName"),
		Message:     docString(data, "message"),
		Status:      requestStatus(data),
		RequestedAt: firetime.ToTimeOrNow(data["requestedAt"]),
		ReviewedBy:  docStringPtr(data, "reviewedBy"),
		ReviewedAt:  firetime.ToTimePtr(data["reviewedAt"]),
		ReviewNote:  docStringPtr(data, "reviewNote"),
		CreatedAt:   firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt:   firetime.ToTimeOrNow(data["updatedAt"]),
	}
}

func PupilToCoachRequestFromDoc(id string, data map[string]any) PupilToCoachRequest {
	return PupilToCoachRequest{
		ID:        id,
		PupilID:   docString(data, "pupilId"),
		PupilName: docString(data, "pupilName"),
		CoachID:   docString(data, "coachId"),
		CoachName: docString(data, "coachName"),
		ClubID:    docString(data, "clubId"),
		ClubName:  docString(data, "clubName"),

		Message:     docString(data, "message"),
		Status:      requestStatus(data),
		RequestedAt: firetime.ToTimeOrNow(data["requestedAt"]),
		ReviewedBy:  docStringPtr(data, "reviewedBy"),
		ReviewedAt:  firetime.ToTimePtr(data["reviewedAt"]),
		ReviewNote:  docStringPtr(data, "reviewNote"),
		Processed:   docBool(data, "processed", false),

		AssignedClubID:       docString(data, "assignedClubId"),
		AssignedClubName:     docString(data, "assignedClubName"),
		ClubAssignedAt:       firetime.ToTimePtr(data["clubAssignedAt"]),
		ClubAssignmentStatus: docString(data, "clubAssignmentStatus"),

		CreatedAt: firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt: firetime.ToTimeOrNow(data["updatedAt"]),
	}
}

func CoachVerificationRequestFromDoc(id string, data map[string]any) CoachVerificationRequest {
	return CoachVerificationRequest{
		ID:          id,
		CoachID:     docString(data, "coachId"),
		CoachName:   docString(data, "coachName"),
		UserID:      docString(data, "userId"),
		Message:     docString(data, "message"),
		Status:      requestStatus(data),
		RequestedAt: firetime.ToTimeOrNow(data["requestedAt"]),
		ReviewedBy:  docStringPtr(data, "reviewedBy"),
		ReviewedAt:  firetime.ToTimePtr(data["reviewedAt"]),
		ReviewNote:  docStringPtr(data, "reviewNote"),
		CreatedAt:   firetime.ToTimeOrNow(data["createdAt"]),
		UpdatedAt:   firetime.ToTimeOrNow(data["updatedAt"]),
	}
}

func requestStatus(data map[string]any) RequestStatus {
	if s := docString(data, "status"); s != "" {
		return RequestStatus(s)
	}
	return RequestStatusPending
}
