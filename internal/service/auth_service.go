package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fitbyte-be/internal/cache"
	"fitbyte-be/internal/jwt"
	"fitbyte-be/internal/models"
	"fitbyte-be/internal/repository"
)

const emailMarkerTTL = 24 * time.Hour

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	cache      cache.Cache
}

// NewAuthService creates a new auth service. cacheClient may be nil.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, cacheClient cache.Cache) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cacheClient,
	}
}

// Register creates a new user account and logs it in
func (s *authService) Register(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	if s.emailTaken(ctx, req.Email) {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Email, string(hashedPassword))
	if errors.Is(err, repository.ErrDuplicateEmail) {
		s.markEmail(ctx, req.Email)
		return nil, ErrEmailExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	s.markEmail(ctx, user.Email)

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Email: user.Email,
		Token: token,
	}, nil
}

// Login authenticates a user and returns a fresh token
func (s *authService) Login(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEmailNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Email: user.Email,
		Token: token,
	}, nil
}

func (s *authService) emailTaken(ctx context.Context, email string) bool {
	if s.cache == nil {
		return false
	}
	exists, err := s.cache.Exists(ctx, cache.EmailKey(email))
	if err != nil {
		log.Printf("Warning: email marker lookup failed: %v", err)
		return false
	}
	return exists
}

func (s *authService) markEmail(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cache.EmailKey(email), "1", emailMarkerTTL); err != nil {
		log.Printf("Warning: failed to cache email marker: %v", err)
	}
}
