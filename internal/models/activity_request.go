package models

// CreateActivityRequest represents the request body for POST /v1/activity
type CreateActivityRequest struct {
	ActivityType      string `json:"activityType" binding:"required,activitytype"`
	DoneAt            string `json:"doneAt" binding:"required,rfc3339"` // ISO 8601 / RFC 3339
	DurationInMinutes int    `json:"durationInMinutes" binding:"required,min=1,max=1440"`
}

// UpdateActivityRequest represents the request body for PATCH /v1/activity/:activityId.
// Only the fields present are changed.
type UpdateActivityRequest struct {
	ActivityType      *string `json:"activityType" binding:"omitempty,activitytype"`
	DoneAt            *string `json:"doneAt" binding:"omitempty,rfc3339"`
	DurationInMinutes *int    `json:"durationInMinutes" binding:"omitempty,min=1,max=1440"`
}

// ListActivitiesQuery holds the raw GET /v1/activity query string.
// Values are parsed leniently by the service; malformed ones are ignored.
type ListActivitiesQuery struct {
	Limit             string `form:"limit"`
	Offset            string `form:"offset"`
	ActivityType      string `form:"activityType"`
	DoneAtFrom        string `form:"doneAtFrom"`
	DoneAtTo          string `form:"doneAtTo"`
	CaloriesBurnedMin string `form:"caloriesBurnedMin"`
	CaloriesBurnedMax string `form:"caloriesBurnedMax"`
}
