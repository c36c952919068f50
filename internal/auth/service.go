package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new admin account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	existing, _ := s.repo.GetUserByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.generateTokenPair(ctx, created)
}

// Login authenticates an admin and returns tokens
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(ctx, user)
}

// RefreshAccessToken generates a new access token using refresh token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshTokenString string) (*AuthResponse, error) {
	refreshToken, err := s.repo.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.repo.GetUserByID(ctx, refreshToken.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.generateTokenPair(ctx, user)
}

// Logout invalidates a refresh token
func (s *Service) Logout(ctx context.Context, refreshTokenString string) error {
	return s.repo.DeleteRefreshToken(ctx, refreshTokenString)
}

// LogoutAll invalidates all refresh tokens for a user
func (s *Service) LogoutAll(ctx context.Context, userID int) error {
	return s.repo.DeleteAllUserTokens(ctx, userID)
}

// generateTokenPair creates access and refresh tokens
func (s *Service) generateTokenPair(ctx context.Context, user *User) (*AuthResponse, error) {
	// Access token (JWT, 15 minutes)
	accessToken, err := GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// Refresh token (random, 7 days)
	refreshToken, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour)
	if err := s.repo.CreateRefreshToken(ctx, user.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
