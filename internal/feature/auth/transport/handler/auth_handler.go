// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"spots_backend/internal/app/middleware"
	"spots_backend/internal/feature/auth/domain"
	"spots_backend/internal/feature/auth/domain/entity"
	"spots_backend/internal/feature/auth/transport/http/dto"
	"spots_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention, interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler processes HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and handles JSON request/response bodies.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// writeError is the single responder that maps domain errors to HTTP
// statuses with non-leaking messages.
func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "email already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid email or password"})
	default:
		// Store or hashing failure. Details stay in the log.
		slog.Error("auth request failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

// Register handles the user registration API endpoint.
// - Binds the request JSON to RegisterReq; binding errors return 400
// - Validation errors from the usecase return 400
// - A duplicate email returns 409
// - Success returns 201 with the public user projection
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     entity.Role(req.Role),
		Phone:    req.Phone,
	})
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "role", user.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles the user login API endpoint.
// - Binds the request JSON to LoginReq; binding errors return 400
// - Authentication failures return 401 with a generic message
// - Success returns 200 with the signed token and user projection
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Never reveal whether the account exists.
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.NewUserResponse(user)})
}

// Me returns the identity resolved by the access gate for the current request.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		// Only reachable if the route is wired without the gate.
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
