package domain

// Firestore collection names. The coach verification flow historically
// referenced a "coach_club_requests" collection in one call site; that was a
// typo for CollectionCoachToClubRequests, which is the single collection used
// everywhere here.
const (
	CollectionCoachToClubRequests       = "coach_to_club_requests"
	CollectionPupilToCoachRequests      = "pupil_to_coach_requests"
	CollectionCoachVerificationRequests = "coach_verification_requests"

	CollectionCoaches = "coaches"
	CollectionPupils  = "pupils"
	CollectionClubs   = "clubs"
	CollectionUsers   = "users"

	CollectionBooks      = "books"
	CollectionLessons    = "lessons"
	CollectionQuizzes    = "quizzes"
	CollectionGames      = "games"
	CollectionChallenges = "challenges"
	CollectionLevels     = "levels"
)

// CatalogCollections lists the collections exposed through the generic
// catalog CRUD endpoints. Request collections are deliberately absent; they
// are only reachable through the workflow endpoints.
func CatalogCollections() []string {
	return []string{
		CollectionCoaches,
		CollectionPupils,
		CollectionClubs,
		CollectionBooks,
		CollectionLessons,
		CollectionQuizzes,
		CollectionGames,
		CollectionChallenges,
		CollectionLevels,
	}
}
