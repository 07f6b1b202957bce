package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fitbyte-be/internal/entities"
)

// ProfileUpdate carries the columns PATCH /v1/user may change.
// Nil optional fields keep the stored value.
type ProfileUpdate struct {
	Preference string
	WeightUnit string
	HeightUnit string
	Weight     *float64
	Height     *float64
	Name       *string
	ImageURI   *string
}

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `user_id, email, password, preference, weight_unit, height_unit, weight, height, name, image_uri, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Preference,
		&user.WeightUnit,
		&user.HeightUnit,
		&user.Weight,
		&user.Height,
		&user.Name,
		&user.ImageURI,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. A conflicting email yields ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (email, password, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email, passwordHash))
	if errors.Is(err, sql.ErrNoRows) || IsUniqueViolation(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID (UUID)
func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfile writes the profile fields and returns the stored row.
// The enum fields are always overwritten; nil optional fields keep their
// current column value (COALESCE) instead of being cleared to NULL.
func (r *userRepository) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*entities.User, error) {
	query := `
		UPDATE users
		SET preference = $2,
			weight_unit = $3,
			height_unit = $4,
			weight = COALESCE($5, weight),
			height = COALESCE($6, height),
			name = COALESCE($7, name),
			image_uri = COALESCE($8, image_uri),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRowContext(ctx, query,
		id,
		update.Preference,
		update.WeightUnit,
		update.HeightUnit,
		update.Weight,
		update.Height,
		update.Name,
		update.ImageURI,
	))
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
