package workflow

import (
	"fmt"
	"time"

	"fairway-backend/internal/domain"
)

// Kind identifies a workflow. Each kind owns one request collection.
type Kind string

const (
	KindCoachToClub       Kind = "coach_to_club"
	KindPupilToCoach      Kind = "pupil_to_coach"
	KindCoachVerification Kind = "coach_verification"
)

// Label returns a human-readable name for notification subjects.
func (k Kind) Label() string {
	switch k {
	case KindCoachToClub:
		return "coach-to-club assignment"
	case KindPupilToCoach:
		return "pupil-to-coach assignment"
	case KindCoachVerification:
		return "coach verification"
	default:
		return string(k)
	}
}

// Descriptor parameterizes the engine for one workflow kind. The three
// workflows share the same fetch/guard/stamp skeleton and differ only in
// collection names and which fields fan out; everything kind-specific lives
// here as data so the pending guard exists in exactly one place.
type Descriptor struct {
	Kind              Kind
	RequestCollection string

	// The coach or pupil document updated on approval.
	SubjectCollection string
	SubjectIDField    string

	// Optional club aggregate whose counter is incremented once per approval.
	// The aggregate id field may be absent on a given request, in which case
	// the counter step is skipped.
	AggregateCollection string
	AggregateIDField    string
	CounterField        string

	// Extra fields stamped onto the request document on approval beyond the
	// standard status/review fields (the pupil variant mirrors its assignment
	// outcome and a processed marker onto the request itself).
	RequestApproveExtras func(req map[string]any, now time.Time) map[string]any

	SubjectApproveFields func(req map[string]any, now time.Time) map[string]any
	// Nil for kinds whose rejection touches only the request document.
	SubjectRejectFields func(req map[string]any, now time.Time) map[string]any

	// Optional fan-out to the requester's user profile document.
	ProfileCollection    string
	ProfileIDField       string
	ProfileApproveFields func(now time.Time) map[string]any
	ProfileRejectFields  func(now time.Time) map[string]any

	// Optional fan-out to related request documents, matched on the subject
	// id, so a decided coach's outstanding club requests stay consistent.
	RelatedCollection    string
	RelatedMatchField    string
	RelatedApproveFields func(now time.Time) map[string]any
	RelatedRejectFields  func(now time.Time) map[string]any

	ApprovedMessage func(req map[string]any) string
}

// Descriptors returns the configuration for every workflow kind.
func Descriptors() map[Kind]Descriptor {
	return map[Kind]Descriptor{
		KindCoachToClub:       CoachToClubDescriptor(),
		KindPupilToCoach:      PupilToCoachDescriptor(),
		KindCoachVerification: CoachVerificationDescriptor(),
	}
}

// CoachToClubDescriptor governs a coach's application to join a club.
// Approval assigns the coach and bumps the club's coach counter.
func CoachToClubDescriptor() Descriptor {
	return Descriptor{
		Kind:              KindCoachToClub,
		RequestCollection: domain.CollectionCoachToClubRequests,
		SubjectCollection: domain.CollectionCoaches,
		SubjectIDField:    "coachId",

		AggregateCollection: domain.CollectionClubs,
		AggregateIDField:    "clubId",
		CounterField:        "totalCoaches",

		SubjectApproveFields: func(req map[string]any, now time.Time) map[string]any {
			return map[string]any{
				"assignedClubId":       req["clubId"],
				"assignedClubName":     req["clubName"],
				"clubAssignedAt":       now,
				"clubAssignmentStatus": "assigned",
				"updatedAt":            now,
			}
		},

		ApprovedMessage: func(req map[string]any) string {
			return fmt.Sprintf("Coach successfully assigned to %v", req["clubName"])
		},
	}
}

// PupilToCoachDescriptor governs a pupil's application to be coached.
// Approval assigns the coach (and the coach's club, when known) to the pupil,
// mirrors the assignment onto the request for display, and bumps the club's
// pupil counter.
func PupilToCoachDescriptor() Descriptor {
	return Descriptor{
		Kind:              KindPupilToCoach,
		RequestCollection: domain.CollectionPupilToCoachRequests,
		SubjectCollection: domain.CollectionPupils,
		SubjectIDField:    "pupilId",

		AggregateCollection: domain.CollectionClubs,
		AggregateIDField:    "clubId",
		CounterField:        "totalPupils",

		RequestApproveExtras: func(req map[string]any, now time.Time) map[string]any {
			return map[string]any{
				"processed":            true,
				"assignedClubId":       req["clubId"],
				"assignedClubName":     req["clubName"],
				"clubAssignedAt":       now,
				"clubAssignmentStatus": "approved",
			}
		},

		SubjectApproveFields: func(req map[string]any, now time.Time) map[string]any {
			return map[string]any{
				"assignedCoachId":      req["coachId"],
				"assignedCoachName":    req["coachName"],
				"coachAssignedAt":      now,
				"assignmentStatus":     "approved",
				"assignedClubId":       req["clubId"],
				"assignedClubName":     req["clubName"],
				"clubAssignedAt":       now,
				"clubAssignmentStatus": "approved",
				"updatedAt":            now,
			}
		},

		ApprovedMessage: func(req map[string]any) string {
			return "Request approved successfully"
		},
	}
}

// CoachVerificationDescriptor governs coach identity verification. It is the
// one kind whose rejection also fans out: the coach and user profile are
// stamped with the downgraded status and any outstanding club requests for
// the coach are blocked.
func CoachVerificationDescriptor() Descriptor {
	return Descriptor{
		Kind:              KindCoachVerification,
		RequestCollection: domain.CollectionCoachVerificationRequests,
		SubjectCollection: domain.CollectionCoaches,
		SubjectIDField:    "coachId",

		SubjectApproveFields: func(req map[string]any, now time.Time) map[string]any {
			return map[string]any{
				"verificationStatus": string(domain.VerificationStatusVerified),
				"verifiedAt":         now,
				"updatedAt":          now,
			}
		},
		SubjectRejectFields: func(req map[string]any, now time.Time) map[string]any {
			return map[string]any{
				"verificationStatus": string(domain.VerificationStatusRejected),
				"verifiedAt":         nil,
				"updatedAt":          now,
			}
		},

		ProfileCollection: domain.CollectionUsers,
		ProfileIDField:    "userId",
		ProfileApproveFields: func(now time.Time) map[string]any {
			return map[string]any{
				"coachVerificationStatus": string(domain.RequestStatusApproved),
				"updatedAt":               now,
			}
		},
		ProfileRejectFields: func(now time.Time) map[string]any {
			return map[string]any{
				"coachVerificationStatus": string(domain.RequestStatusRejected),
				"updatedAt":               now,
			}
		},

		RelatedCollection: domain.CollectionCoachToClubRequests,
		RelatedMatchField: "coachId",
		RelatedApproveFields: func(now time.Time) map[string]any {
			return map[string]any{
				"clubRequestStatus": "approved",
				"updatedAt":         now,
			}
		},
		RelatedRejectFields: func(now time.Time) map[string]any {
			return map[string]any{
				"clubRequestStatus": "blocked",
				"updatedAt":         now,
			}
		},

		ApprovedMessage: func(req map[string]any) string {
			return "Coach verified successfully"
		},
	}
}
