package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"fitbyte-be/internal/entities"
)

// ActivityFilter narrows GET /v1/activity results. Nil fields are not applied.
type ActivityFilter struct {
	ActivityType      *string
	DoneAtFrom        *time.Time
	DoneAtTo          *time.Time
	CaloriesBurnedMin *int
	CaloriesBurnedMax *int
	Limit             int
	Offset            int
}

// ActivityRepository defines the interface for activity database operations
type ActivityRepository interface {
	Create(ctx context.Context, activity *entities.Activity) (*entities.Activity, error)
	FindByID(ctx context.Context, activityID, userID string) (*entities.Activity, error)
	List(ctx context.Context, userID string, filter ActivityFilter) ([]*entities.Activity, error)
	Update(ctx context.Context, activity *entities.Activity) (*entities.Activity, error)
	Delete(ctx context.Context, activityID, userID string) (*entities.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

const activityColumns = `activity_id, user_id, activity_type, done_at, duration_in_minutes, calories_burned, created_at, updated_at`

func scanActivity(row interface{ Scan(...any) error }) (*entities.Activity, error) {
	var activity entities.Activity
	err := row.Scan(
		&activity.ID,
		&activity.UserID,
		&activity.ActivityType,
		&activity.DoneAt,
		&activity.DurationInMinutes,
		&activity.CaloriesBurned,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// Create inserts a new activity; the database generates its ID and timestamps
func (r *activityRepository) Create(ctx context.Context, activity *entities.Activity) (*entities.Activity, error) {
	query := `
		INSERT INTO activities (user_id, activity_type, done_at, duration_in_minutes, calories_burned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + activityColumns

	created, err := scanActivity(r.db.QueryRowContext(ctx, query,
		activity.UserID,
		activity.ActivityType,
		activity.DoneAt.UTC(),
		activity.DurationInMinutes,
		activity.CaloriesBurned,
	))
	if IsForeignKeyViolation(err) || isInvalidText(err) {
		return nil, ErrUserReference
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return created, nil
}

// FindByID finds an activity owned by userID
func (r *activityRepository) FindByID(ctx context.Context, activityID, userID string) (*entities.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE activity_id = $1 AND user_id = $2`

	activity, err := scanActivity(r.db.QueryRowContext(ctx, query, activityID, userID))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find activity: %w", err)
	}

	return activity, nil
}

// List retrieves the user's activities, newest first, applying the filter
func (r *activityRepository) List(ctx context.Context, userID string, filter ActivityFilter) ([]*entities.Activity, error) {
	var (
		conditions = []string{"user_id = $1"}
		args       = []interface{}{userID}
	)
	add := func(condition string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.ActivityType != nil {
		add("activity_type = $%d", *filter.ActivityType)
	}
	if filter.DoneAtFrom != nil {
		add("done_at >= $%d", filter.DoneAtFrom.UTC())
	}
	if filter.DoneAtTo != nil {
		add("done_at <= $%d", filter.DoneAtTo.UTC())
	}
	if filter.CaloriesBurnedMin != nil {
		add("calories_burned >= $%d", *filter.CaloriesBurnedMin)
	}
	if filter.CaloriesBurnedMax != nil {
		add("calories_burned <= $%d", *filter.CaloriesBurnedMax)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM activities
		WHERE %s
		ORDER BY done_at DESC, activity_id DESC
		LIMIT $%d OFFSET $%d
	`, activityColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*entities.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

// Update overwrites the mutable columns of an activity owned by activity.UserID
func (r *activityRepository) Update(ctx context.Context, activity *entities.Activity) (*entities.Activity, error) {
	query := `
		UPDATE activities
		SET activity_type = $1,
			done_at = $2,
			duration_in_minutes = $3,
			calories_burned = $4,
			updated_at = NOW()
		WHERE activity_id = $5 AND user_id = $6
		RETURNING ` + activityColumns

	updated, err := scanActivity(r.db.QueryRowContext(ctx, query,
		activity.ActivityType,
		activity.DoneAt.UTC(),
		activity.DurationInMinutes,
		activity.CaloriesBurned,
		activity.ID,
		activity.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return updated, nil
}

// Delete removes an activity (only if the user owns it) and returns the deleted row
func (r *activityRepository) Delete(ctx context.Context, activityID, userID string) (*entities.Activity, error) {
	query := `DELETE FROM activities WHERE activity_id = $1 AND user_id = $2 RETURNING ` + activityColumns

	deleted, err := scanActivity(r.db.QueryRowContext(ctx, query, activityID, userID))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete activity: %w", err)
	}

	return deleted, nil
}
