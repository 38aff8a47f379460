package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// genericCredentialError is shown for both a missing user and a wrong
// password, and for duplicate usernames at registration. The cases are
// deliberately indistinguishable to the client.
const genericCredentialError = "invalid username or password"

// credentialsRequest is the request body for login and registration.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles authentication-related HTTP endpoints.
type AuthController struct {
	service        *Service
	sessionManager *SessionManager
	rateLimiter    *RateLimiter
}

// NewAuthController creates a new authentication controller. The rate
// limiter may be nil, in which case login attempts are not throttled.
func NewAuthController(service *Service, sessionManager *SessionManager, rateLimiter *RateLimiter) *AuthController {
	return &AuthController{
		service:        service,
		sessionManager: sessionManager,
		rateLimiter:    rateLimiter,
	}
}

// RegisterRoutes registers authentication routes on the router.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/login", ac.Login)
	router.POST("/logout", ac.Logout)
	router.POST("/register", ac.Register)
	router.DELETE("/account", ac.DeleteAccount)
}

// Login authenticates a user and creates a session.
// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if ac.rateLimiter != nil {
		if allowed, retryAfter := ac.rateLimiter.Allow(c.ClientIP(), req.Username); !allowed {
			c.Header("Retry-After", retryAfter.String())
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "too many login attempts",
				"retry_after": retryAfter.String(),
			})
			return
		}
	}

	user, err := ac.service.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			if ac.rateLimiter != nil {
				ac.rateLimiter.RecordFailure(c.ClientIP(), req.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": genericCredentialError})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if ac.rateLimiter != nil {
		ac.rateLimiter.RecordSuccess(c.ClientIP(), req.Username)
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// Logout destroys the session.
// POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	_ = ac.sessionManager.DestroySession(c.Request)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Register creates a new account. Registering does not log the user in.
// POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := ac.service.CreateAccount(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			c.JSON(http.StatusConflict, gin.H{"error": genericCredentialError})
		case errors.Is(err, ErrUsernameRequired), errors.Is(err, ErrPasswordRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// DeleteAccount deletes the authenticated user's own account and ends
// the session. The user's favourite links are left behind.
// DELETE /account
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	username := ac.sessionManager.GetUsername(c.Request)
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := ac.service.DeleteAccount(username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	_ = ac.sessionManager.DestroySession(c.Request)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
