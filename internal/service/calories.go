package service

import "fitbyte-be/internal/entities"

// CaloriesBurned returns the calories for minutes of activityType.
func CaloriesBurned(activityType string, minutes int) (int, error) {
	perMinute, ok := entities.CaloriesPerMinute[activityType]
	if !ok {
		return 0, ErrInvalidActivityType
	}
	if minutes < 1 || minutes > entities.MaxDurationInMinutes {
		return 0, ErrInvalidDuration
	}
	return perMinute * minutes, nil
}
