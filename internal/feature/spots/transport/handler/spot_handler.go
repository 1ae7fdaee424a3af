// Package handler provides the HTTP handlers for the spots feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spots_backend/internal/app/middleware"
	authentity "spots_backend/internal/feature/auth/domain/entity"
	"spots_backend/internal/feature/spots/domain"
	"spots_backend/internal/feature/spots/domain/entity"
	"spots_backend/internal/feature/spots/transport/http/dto"
	"spots_backend/internal/feature/spots/usecase"
)

// SpotUsecase defines the listing operations the handler depends on.
// Following Go convention, interfaces are defined by the consumer (handler), not the provider (usecase).
type SpotUsecase interface {
	List(ctx context.Context) ([]entity.Spot, error)
	ListByHost(ctx context.Context, hostID uint) ([]entity.Spot, error)
	Get(ctx context.Context, id uint) (*entity.Spot, error)
	Create(ctx context.Context, host *authentity.User, spot *entity.Spot) error
	Update(ctx context.Context, caller *authentity.User, id uint, in usecase.SpotUpdate) (*entity.Spot, error)
	Delete(ctx context.Context, caller *authentity.User, id uint) error
}

// SpotHandler processes HTTP requests for spot listing operations.
type SpotHandler struct {
	uc SpotUsecase
}

// NewSpotHandler creates a new SpotHandler.
func NewSpotHandler(uc SpotUsecase) *SpotHandler {
	return &SpotHandler{uc: uc}
}

// writeError maps spots domain errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSpotNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "spot not found"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	default:
		slog.Error("spot request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// spotID parses the :id path parameter.
func spotID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return 0, false
	}
	return uint(id), true
}

// List returns all listings. Public.
func (h *SpotHandler) List(c *gin.Context) {
	spots, err := h.uc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

// Get returns a single listing by ID. Public.
func (h *SpotHandler) Get(c *gin.Context) {
	id, ok := spotID(c)
	if !ok {
		return
	}
	spot, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// ListOwn returns the authenticated host's listings.
func (h *SpotHandler) ListOwn(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	spots, err := h.uc.ListByHost(c.Request.Context(), user.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

// Create stores a new listing owned by the authenticated host.
func (h *SpotHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req dto.CreateSpotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	maxGuests := req.MaxGuests
	if maxGuests == 0 {
		maxGuests = 1
	}
	spot := &entity.Spot{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     maxGuests,
		Amenities:     req.Amenities,
		PhotoURL:      req.PhotoURL,
	}
	if err := h.uc.Create(c.Request.Context(), user, spot); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("spot created", "spot_id", spot.ID, "host_id", user.ID)
	c.JSON(http.StatusCreated, spot)
}

// Update applies a partial update to a listing.
func (h *SpotHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := spotID(c)
	if !ok {
		return
	}
	var req dto.UpdateSpotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	spot, err := h.uc.Update(c.Request.Context(), user, id, usecase.SpotUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Amenities:     req.Amenities,
		PhotoURL:      req.PhotoURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// Delete removes a listing.
func (h *SpotHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, ok := spotID(c)
	if !ok {
		return
	}
	if err := h.uc.Delete(c.Request.Context(), user, id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("spot deleted", "spot_id", id, "user_id", user.ID)
	c.Status(http.StatusNoContent)
}
