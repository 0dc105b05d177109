package domain

import "time"

// Gender of a client, as captured on the intake form.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Client represents a person being coached and tracked by the system.
// Goals and ProgressEntries are owned exclusively by the client; other
// entities reference the client only through its id.
type Client struct {
	ID            string     `bson:"_id,omitempty" json:"id"`
	FirstName     string     `bson:"firstName" json:"firstName"`
	LastName      string     `bson:"lastName" json:"lastName"`
	Email         string     `bson:"email" json:"email"`
	Phone         string     `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth   *time.Time `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	JoinDate      time.Time  `bson:"joinDate" json:"joinDate"`
	Gender        Gender     `bson:"gender" json:"gender"`
	Height        *float64   `bson:"height,omitempty" json:"height,omitempty"`               // cm
	CurrentWeight *float64   `bson:"currentWeight,omitempty" json:"currentWeight,omitempty"` // kg
	InitialWeight *float64   `bson:"initialWeight,omitempty" json:"initialWeight,omitempty"` // kg

	Goals           []Goal          `bson:"goals" json:"goals"`
	ProgressEntries []ProgressEntry `bson:"progressEntries" json:"progressEntries"`

	Notes       string       `bson:"notes,omitempty" json:"notes,omitempty"`
	DietPlan    *DietPlan    `bson:"dietPlan,omitempty" json:"dietPlan,omitempty"`
	WorkoutPlan *WorkoutPlan `bson:"workoutPlan,omitempty" json:"workoutPlan,omitempty"`
	NextCheckIn *time.Time   `bson:"nextCheckIn,omitempty" json:"nextCheckIn,omitempty"`

	// Key of the client's photo in object storage. The raw key is internal;
	// handlers expose it only through presigned URLs.
	PhotoObjectKey string `bson:"photoObjectKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName returns the display name used in search and check-in listings.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// HasGoalOfType reports whether at least one of the client's goals has the
// given type.
func (c *Client) HasGoalOfType(t GoalType) bool {
	for _, g := range c.Goals {
		if g.Type == t {
			return true
		}
	}
	return false
}
