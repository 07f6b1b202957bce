package entities

import "time"

// Activity represents a logged workout row in the database
type Activity struct {
	ID                string    `json:"id"`      // UUID
	UserID            string    `json:"user_id"` // owning user, UUID
	ActivityType      string    `json:"activity_type"`
	DoneAt            time.Time `json:"done_at"`
	DurationInMinutes int       `json:"duration_in_minutes"`
	CaloriesBurned    int       `json:"calories_burned"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Supported activity types.
const (
	ActivityWalking    = "Walking"
	ActivityYoga       = "Yoga"
	ActivityStretching = "Stretching"
	ActivityCycling    = "Cycling"
	ActivitySwimming   = "Swimming"
	ActivityDancing    = "Dancing"
	ActivityHiking     = "Hiking"
	ActivityRunning    = "Running"
	ActivityHIIT       = "HIIT"
	ActivityJumpRope   = "JumpRope"
)

// MaxDurationInMinutes bounds a single logged activity to one day.
const MaxDurationInMinutes = 24 * 60

// CaloriesPerMinute maps each supported activity type to its burn rate.
var CaloriesPerMinute = map[string]int{
	ActivityWalking:    4,
	ActivityYoga:       4,
	ActivityStretching: 4,
	ActivityCycling:    8,
	ActivitySwimming:   8,
	ActivityDancing:    8,
	ActivityHiking:     10,
	ActivityRunning:    10,
	ActivityHIIT:       10,
	ActivityJumpRope:   10,
}

// IsValidActivityType reports whether activityType is one of the supported types.
func IsValidActivityType(activityType string) bool {
	_, ok := CaloriesPerMinute[activityType]
	return ok
}
