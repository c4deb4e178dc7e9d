// Auth HTTP handlers: account registration and login. These are the only
// unauthenticated endpoints besides the healthcheck; both reply with the
// account plus a signed access token.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clipstream/go-video-backend/internal/auth"
	"github.com/clipstream/go-video-backend/internal/domain"
)

// AccountService defines registration and credential checks consumed by HTTP
// handlers.
type AccountService interface {
	// Register creates an account; duplicate username/email is rejected.
	Register(ctx context.Context, username, email, password, profilePicture string) (*domain.User, error)
	// Login verifies the email/password pair and returns the account.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// TokenConfig carries the signing material for issued access tokens. The
// router sets it from application config after constructing Handlers.
type TokenConfig struct {
	Secret []byte
	TTL    time.Duration
}

// SetTokenConfig wires the token signing configuration.
func (h *Handlers) SetTokenConfig(tc TokenConfig) { h.token = tc }

// RegisterRequest is the JSON payload for creating an account.
type RegisterRequest struct {
	Username       string `json:"username" binding:"required,min=1,max=64"  example:"chai"`
	Email          string `json:"email"    binding:"required,email"         example:"chai@example.com"`
	Password       string `json:"password" binding:"required,min=8,max=72"  example:"correct-horse-battery"`
	ProfilePicture string `json:"profile_picture"                           example:"https://media.example.com/avatars/chai"`
}

// LoginRequest is the JSON payload for logging in.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email" example:"chai@example.com"`
	Password string `json:"password" binding:"required"       example:"correct-horse-battery"`
}

// AuthResponse wraps the account and its access token.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Register godoc
// @ID          register
// @Summary     Create an account
// @Description Registers a new account and returns it with a signed access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.RegisterRequest  true  "Registration payload"
//
// @Success     201  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     409  {object}  handlers.APIResponse "Username or email taken"
// @Router      /auth/register [post]
func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "username, email, and password (8+ chars) are required")
		return
	}
	u, err := h.accountSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.ProfilePicture)
	if err != nil {
		failErr(c, err)
		return
	}
	token, err := auth.GenerateToken(h.token.Secret, u.ID, u.Username, h.token.TTL)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusCreated, AuthResponse{User: u, Token: token}, "account created successfully")
}

// Login godoc
// @ID          login
// @Summary     Log in
// @Description Verifies credentials and returns the account with a signed access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.LoginRequest  true  "Login payload"
//
// @Success     200  {object}  handlers.APIResponse
// @Failure     400  {object}  handlers.APIResponse "Bad request"
// @Failure     401  {object}  handlers.APIResponse "Invalid credentials"
// @Router      /auth/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "email and password are required")
		return
	}
	u, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		failErr(c, err)
		return
	}
	token, err := auth.GenerateToken(h.token.Secret, u.ID, u.Username, h.token.TTL)
	if err != nil {
		failErr(c, err)
		return
	}
	respond(c, http.StatusOK, AuthResponse{User: u, Token: token}, "logged in successfully")
}
