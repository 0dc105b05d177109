package domain

import "time"

// CheckInStatus tracks the lifecycle of a scheduled review session.
type CheckInStatus string

const (
	CheckInScheduled CheckInStatus = "scheduled"
	CheckInCompleted CheckInStatus = "completed"
	CheckInCancelled CheckInStatus = "cancelled"
)

// IsValid reports whether s is one of the enumerated check-in statuses.
func (s CheckInStatus) IsValid() bool {
	return s == CheckInScheduled || s == CheckInCompleted || s == CheckInCancelled
}

// CheckIn is a scheduled review session between coach and client. Only the
// client id is stored; the display name is resolved at read time so a client
// rename can never leave stale names on existing check-ins.
type CheckIn struct {
	ID       string        `bson:"_id,omitempty" json:"id"`
	ClientID string        `bson:"clientId" json:"clientId"`
	Date     time.Time     `bson:"date" json:"date"`
	Status   CheckInStatus `bson:"status" json:"status"`
	Notes    string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Duration int           `bson:"duration" json:"duration"` // minutes
}
