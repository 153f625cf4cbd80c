package domain

import "time"

// Tracking states of a user activity. Any state may follow any other; there is
// no server-side transition graph.
const (
	TrackingStatusPending   = "PENDING"
	TrackingStatusStarted   = "STARTED"
	TrackingStatusCompleted = "COMPLETED"
	TrackingStatusCancelled = "CANCELLED"
)

// TrackingStatuses lists every recognized tracking state, used for enum
// validation of request payloads.
var TrackingStatuses = []string{
	TrackingStatusPending,
	TrackingStatusStarted,
	TrackingStatusCompleted,
	TrackingStatusCancelled,
}

// IsTrackingStatus reports whether s is a recognized tracking state.
func IsTrackingStatus(s string) bool {
	for _, v := range TrackingStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// UserActivity links a user to a catalog activity with a tracking status.
// The (UserID, ActivityID) pair is unique per the storage schema.
type UserActivity struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ActivityID string    `json:"activity_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserActivityDetail merges catalog fields of a tracked activity with the
// per-user tracking status, produced by the join query.
type UserActivityDetail struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	Duration        int    `json:"duration"`
	DifficultyLevel string `json:"difficulty_level"`
	Content         string `json:"content"`
	Status          string `json:"status"`
}
