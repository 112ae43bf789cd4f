package auth

import (
	"errors"
	"net/http"

	apperrors "okr-tracker-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the sign-in endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents the credential payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the signed-in identity
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	Identity    *Identity `json:"identity"`
}

// ValidateRequest represents the token validation payload
type ValidateRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateResponse reports token validity and its claims
type ValidateResponse struct {
	Valid  bool        `json:"valid"`
	Claims *AuthClaims `json:"claims,omitempty"`
}

// Login handles POST /auth/login
// @Summary Sign in with email and password
// @Description Verifies credentials and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse "Signed in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.service.config.TokenTTL.Seconds()),
		Identity: &Identity{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// ValidateToken handles POST /auth/validate
// @Summary Validate a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body ValidateRequest true "Token"
// @Success 200 {object} ValidateResponse "Validation result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Valid: true, Claims: claims})
}

// errInvalidIdentity is returned by helpers when the context has no identity
var errInvalidIdentity = errors.New("no authenticated identity")

// CurrentIdentity returns the caller's identity or an error suitable for a 401
func CurrentIdentity(c *gin.Context) (*Identity, error) {
	identity, ok := GetIdentity(c)
	if !ok || identity == nil {
		return nil, errInvalidIdentity
	}
	return identity, nil
}
