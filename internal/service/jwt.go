package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sumaiya226/PCOS/internal/models"
)

type JWTService struct {
	secretKey       []byte
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
}

type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewJWTService(secret string) *JWTService {
	if secret == "" {
		secret = "your-secret-key-change-this"
		slog.Warn("Using default JWT secret - change in production!")
	}

	return &JWTService{
		secretKey:       []byte(secret),
		accessTokenExp:  15 * time.Minute,
		refreshTokenExp: 7 * 24 * time.Hour,
	}
}

func (s *JWTService) GenerateAccessToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pcos-risk-auth",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) GenerateRefreshToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.refreshTokenExp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pcos-risk-auth",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return s.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// AccessTokenTTL reports the access token lifetime in seconds, for the
// expires_in response field.
func (s *JWTService) AccessTokenTTL() int64 {
	return int64(s.accessTokenExp.Seconds())
}
