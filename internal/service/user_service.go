package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fitbyte-be/internal/cache"
	"fitbyte-be/internal/entities"
	"fitbyte-be/internal/models"
	"fitbyte-be/internal/repository"
)

const profileTTL = 10 * time.Minute

// UserService reads and updates the caller's profile
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type userService struct {
	repo  repository.UserRepository
	cache cache.Cache
}

// NewUserService creates a new user service. cacheClient may be nil.
func NewUserService(repo repository.UserRepository, cacheClient cache.Cache) UserService {
	return &userService{repo: repo, cache: cacheClient}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	if s.cache != nil {
		var cached models.ProfileResponse
		err := s.cache.GetJSON(ctx, cache.ProfileKey(userID), &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("Warning: profile cache read failed: %v", err)
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := toProfileResponse(user)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cache.ProfileKey(userID), profile, profileTTL); err != nil {
			log.Printf("Warning: failed to cache profile: %v", err)
		}
	}
	return profile, nil
}

// UpdateProfile applies a PATCH; optional fields missing from req are left untouched.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		Preference: req.Preference,
		WeightUnit: req.WeightUnit,
		HeightUnit: req.HeightUnit,
		Weight:     req.Weight,
		Height:     req.Height,
		Name:       req.Name,
		ImageURI:   req.ImageURI,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.ProfileKey(userID)); err != nil {
			log.Printf("Warning: failed to invalidate cached profile: %v", err)
		}
	}

	return toProfileResponse(user), nil
}

func toProfileResponse(user *entities.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		Preference: user.Preference,
		WeightUnit: user.WeightUnit,
		HeightUnit: user.HeightUnit,
		Weight:     user.Weight,
		Height:     user.Height,
		Email:      user.Email,
		Name:       user.Name,
		ImageURI:   user.ImageURI,
	}
}
