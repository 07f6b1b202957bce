package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fitbyte-be/internal/entities"
	"fitbyte-be/internal/events"
	"fitbyte-be/internal/metrics"
	"fitbyte-be/internal/models"
	"fitbyte-be/internal/repository"
)

const (
	defaultActivityLimit  = 5
	defaultActivityOffset = 0
	maxActivityLimit      = 100

	publishTimeout = 5 * time.Second
)

// ActivityService defines the interface for activity business logic
type ActivityService interface {
	Create(ctx context.Context, userID string, req *models.CreateActivityRequest) (*models.ActivityResponse, error)
	List(ctx context.Context, userID string, query *models.ListActivitiesQuery) ([]models.ActivityResponse, error)
	Update(ctx context.Context, userID, activityID string, req *models.UpdateActivityRequest) (*models.ActivityResponse, error)
	Delete(ctx context.Context, userID, activityID string) error
}

type activityService struct {
	repo      repository.ActivityRepository
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewActivityService creates a new activity service. publisher and m may be nil.
func NewActivityService(repo repository.ActivityRepository, publisher events.Publisher, m *metrics.Metrics) ActivityService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &activityService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}

// Create logs a new activity; calories are always derived from type and duration
func (s *activityService) Create(ctx context.Context, userID string, req *models.CreateActivityRequest) (*models.ActivityResponse, error) {
	doneAt, err := parseDoneAt(req.DoneAt)
	if err != nil {
		return nil, err
	}
	calories, err := CaloriesBurned(req.ActivityType, req.DurationInMinutes)
	if err != nil {
		return nil, err
	}

	activity, err := s.repo.Create(ctx, &entities.Activity{
		UserID:            userID,
		ActivityType:      req.ActivityType,
		DoneAt:            doneAt,
		DurationInMinutes: req.DurationInMinutes,
		CaloriesBurned:    calories,
	})
	if errors.Is(err, repository.ErrUserReference) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.metrics.RecordActivity("created", activity.CaloriesBurned)
	s.publish(ctx, events.ActivityCreated, activity)
	return toActivityResponse(activity), nil
}

// List returns the caller's activities, newest first.
// Malformed or negative query values fall back to defaults or are ignored;
// limit is capped at maxActivityLimit.
func (s *activityService) List(ctx context.Context, userID string, query *models.ListActivitiesQuery) ([]models.ActivityResponse, error) {
	activities, err := s.repo.List(ctx, userID, parseActivityFilter(query))
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	responses := make([]models.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, *toActivityResponse(activity))
	}
	return responses, nil
}

// Update applies the fields present in req and recomputes calories
func (s *activityService) Update(ctx context.Context, userID, activityID string, req *models.UpdateActivityRequest) (*models.ActivityResponse, error) {
	if _, err := uuid.Parse(activityID); err != nil {
		return nil, ErrActivityNotFound
	}

	activity, err := s.repo.FindByID(ctx, activityID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	if req.ActivityType != nil {
		activity.ActivityType = *req.ActivityType
	}
	if req.DoneAt != nil {
		doneAt, err := parseDoneAt(*req.DoneAt)
		if err != nil {
			return nil, err
		}
		activity.DoneAt = doneAt
	}
	if req.DurationInMinutes != nil {
		activity.DurationInMinutes = *req.DurationInMinutes
	}

	activity.CaloriesBurned, err = CaloriesBurned(activity.ActivityType, activity.DurationInMinutes)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, activity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	s.metrics.RecordActivity("updated", updated.CaloriesBurned)
	s.publish(ctx, events.ActivityUpdated, updated)
	return toActivityResponse(updated), nil
}

// Delete removes an activity owned by userID
func (s *activityService) Delete(ctx context.Context, userID, activityID string) error {
	if _, err := uuid.Parse(activityID); err != nil {
		return ErrActivityNotFound
	}

	deleted, err := s.repo.Delete(ctx, activityID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrActivityNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.metrics.RecordActivity("deleted", 0)
	s.publish(ctx, events.ActivityDeleted, deleted)
	return nil
}

// publish never fails the request; a broker outage only costs the event.
// The event outlives the request context since the row is already committed.
func (s *activityService) publish(ctx context.Context, eventType string, activity *entities.Activity) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.ActivityEvent{
		EventType:         eventType,
		ActivityID:        activity.ID,
		UserID:            activity.UserID,
		ActivityType:      activity.ActivityType,
		DoneAt:            activity.DoneAt,
		DurationInMinutes: activity.DurationInMinutes,
		CaloriesBurned:    activity.CaloriesBurned,
		OccurredAt:        s.now().UTC(),
	}
	if err := s.publisher.PublishActivity(ctx, event); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func parseDoneAt(value string) (time.Time, error) {
	doneAt, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrInvalidDoneAt
	}
	return doneAt.UTC(), nil
}

func parseActivityFilter(query *models.ListActivitiesQuery) repository.ActivityFilter {
	filter := repository.ActivityFilter{
		Limit:  defaultActivityLimit,
		Offset: defaultActivityOffset,
	}
	if query == nil {
		return filter
	}

	if n, ok := parseNonNegative(query.Limit); ok {
		filter.Limit = min(n, maxActivityLimit)
	}
	if n, ok := parseNonNegative(query.Offset); ok {
		filter.Offset = n
	}
	if entities.IsValidActivityType(query.ActivityType) {
		activityType := query.ActivityType
		filter.ActivityType = &activityType
	}
	if t, err := time.Parse(time.RFC3339, query.DoneAtFrom); err == nil {
		filter.DoneAtFrom = &t
	}
	if t, err := time.Parse(time.RFC3339, query.DoneAtTo); err == nil {
		filter.DoneAtTo = &t
	}
	if n, ok := parseNonNegative(query.CaloriesBurnedMin); ok {
		filter.CaloriesBurnedMin = &n
	}
	if n, ok := parseNonNegative(query.CaloriesBurnedMax); ok {
		filter.CaloriesBurnedMax = &n
	}
	return filter
}

func parseNonNegative(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func toActivityResponse(activity *entities.Activity) *models.ActivityResponse {
	return &models.ActivityResponse{
		ActivityID:        activity.ID,
		ActivityType:      activity.ActivityType,
		DoneAt:            activity.DoneAt,
		DurationInMinutes: activity.DurationInMinutes,
		CaloriesBurned:    activity.CaloriesBurned,
		CreatedAt:         activity.CreatedAt,
		UpdatedAt:         activity.UpdatedAt,
	}
}
