package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaiya226/PCOS/internal/models"
	"github.com/sumaiya226/PCOS/internal/service"
)

type AuthHandlers struct {
	s          *service.UserService
	jwtService *service.JWTService
}

func NewAuthHandlers(userService *service.UserService, jwtService *service.JWTService) *AuthHandlers {
	return &AuthHandlers{
		s:          userService,
		jwtService: jwtService,
	}
}

// POST /auth/register
func (h *AuthHandlers) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Invalid registration request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authResponse, err := h.s.RegisterWithTokens(c, &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration successful",
		"user":         authResponse.User,
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /auth/login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authResponse, err := h.s.LoginWithTokens(c, &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"user":         authResponse.User,
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /auth/refresh
func (h *AuthHandlers) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token required"})
		return
	}

	authResponse, err := h.s.RefreshToken(c, refreshToken)
	if err != nil {
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setRefreshTokenCookie(c, authResponse.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"access_token": authResponse.AccessToken,
		"token_type":   authResponse.TokenType,
		"expires_in":   authResponse.ExpiresIn,
	})
}

// POST /auth/logout
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GET /auth/me
func (h *AuthHandlers) GetProfile(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	currentUser := user.(*models.User)
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         currentUser.ID,
			"email":      currentUser.Email,
			"full_name":  currentUser.FullName,
			"age":        currentUser.Age,
			"created_at": currentUser.CreatedAt,
			"last_login": currentUser.LastLogin,
		},
	})
}

func (h *AuthHandlers) setRefreshTokenCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(
		"refresh_token",
		refreshToken,
		7*24*60*60,
		"/",
		"",
		false, // secure (true for HTTPS)
		true,  // httpOnly
	)
}
