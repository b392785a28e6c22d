package service

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/sumaiya226/PCOS/internal/models"
	"github.com/sumaiya226/PCOS/internal/repository"
	"github.com/sumaiya226/PCOS/internal/utils"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	TokenType    string        `json:"token_type"`
	ExpiresIn    int64         `json:"expires_in"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type UserService struct {
	r          *repository.UserRepository
	jwtService *JWTService
}

func NewUserService(r *repository.UserRepository, jwt *JWTService) *UserService {
	return &UserService{
		r:          r,
		jwtService: jwt,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.r.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	hashPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		return nil, errors.New("failed to process password")
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashPassword,
		FullName:     req.FullName,
		Age:          req.Age,
	}

	if err = s.r.Create(ctx, user); err != nil {
		slog.Error("Failed to create user", "error", err, "email", req.Email)
		return nil, errors.New("failed to create user")
	}

	slog.Info("User registered successfully",
		"user_id", user.ID,
		"email", user.Email,
	)

	return user, nil
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.r.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("Login attempt with non-existent email", "email", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPassword(user.PasswordHash, req.Password); err != nil {
		slog.Warn("Invalid password attempt",
			"email", req.Email,
			"user_id", user.ID,
		)
		return nil, ErrInvalidCredentials
	}

	if err := s.r.TouchLastLogin(ctx, user.ID); err != nil {
		slog.Warn("Failed to update last login", "error", err, "user_id", user.ID)
	}

	slog.Info("User logged in successfully",
		"user_id", user.ID,
		"email", user.Email,
	)

	return user, nil
}

func (s *UserService) RegisterWithTokens(ctx context.Context, req *models.RegisterRequest) (*AuthResponse, error) {
	user, err := s.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.generateAuthResponse(user)
}

func (s *UserService) LoginWithTokens(ctx context.Context, req *models.LoginRequest) (*AuthResponse, error) {
	user, err := s.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.generateAuthResponse(user)
}

func (s *UserService) generateAuthResponse(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.New("failed to generate access token")
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return nil, errors.New("failed to generate refresh token")
	}

	return &AuthResponse{
		User: &UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.jwtService.AccessTokenTTL(),
	}, nil
}

func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.New("invalid refresh token")
	}
	if claims.TokenType != "refresh" {
		return nil, errors.New("invalid refresh token")
	}

	user, err := s.r.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	return s.generateAuthResponse(user)
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return s.r.GetByID(ctx, userID)
}
