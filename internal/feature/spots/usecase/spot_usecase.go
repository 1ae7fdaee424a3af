// Package usecase implements the business logic for spot listing operations.
package usecase

import (
	"context"

	authentity "spots_backend/internal/feature/auth/domain/entity"
	"spots_backend/internal/feature/spots/domain"
	"spots_backend/internal/feature/spots/domain/entity"
)

// SpotRepository abstracts the persistence layer for spot listings.
// Following Go convention, interfaces are defined by the consumer (usecase), not the provider (adapters).
type SpotRepository interface {
	List(ctx context.Context) ([]entity.Spot, error)
	ListByHost(ctx context.Context, hostID uint) ([]entity.Spot, error)
	FindByID(ctx context.Context, id uint) (*entity.Spot, error)
	Create(ctx context.Context, spot *entity.Spot) error
	Update(ctx context.Context, spot *entity.Spot) error
	Delete(ctx context.Context, id uint) error
}

// SpotUpdate carries the mutable listing fields for a partial update.
// Nil fields are left unchanged.
type SpotUpdate struct {
	Title         *string
	Description   *string
	Location      *string
	PricePerNight *float64
	MaxGuests     *int
	Amenities     *[]string
	PhotoURL      *string
}

// SpotUsecase provides the listing operations, including the owner
// checks for mutations.
type SpotUsecase struct {
	repo SpotRepository
}

// NewSpotUsecase creates a new SpotUsecase with the given repository.
func NewSpotUsecase(r SpotRepository) *SpotUsecase {
	return &SpotUsecase{repo: r}
}

// List returns all listings.
func (u *SpotUsecase) List(ctx context.Context) ([]entity.Spot, error) {
	return u.repo.List(ctx)
}

// ListByHost returns the listings owned by the given host.
func (u *SpotUsecase) ListByHost(ctx context.Context, hostID uint) ([]entity.Spot, error) {
	return u.repo.ListByHost(ctx, hostID)
}

// Get returns a single listing by ID.
func (u *SpotUsecase) Get(ctx context.Context, id uint) (*entity.Spot, error) {
	return u.repo.FindByID(ctx, id)
}

// Create stores a new listing owned by the calling host.
func (u *SpotUsecase) Create(ctx context.Context, host *authentity.User, spot *entity.Spot) error {
	spot.HostID = host.ID
	return u.repo.Create(ctx, spot)
}

// Update applies a partial update to a listing. A host may only update
// its own listings; an admin may update any.
func (u *SpotUsecase) Update(ctx context.Context, caller *authentity.User, id uint, in SpotUpdate) (*entity.Spot, error) {
	spot, err := u.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		spot.Title = *in.Title
	}
	if in.Description != nil {
		spot.Description = *in.Description
	}
	if in.Location != nil {
		spot.Location = *in.Location
	}
	if in.PricePerNight != nil {
		spot.PricePerNight = *in.PricePerNight
	}
	if in.MaxGuests != nil {
		spot.MaxGuests = *in.MaxGuests
	}
	if in.Amenities != nil {
		spot.Amenities = *in.Amenities
	}
	if in.PhotoURL != nil {
		spot.PhotoURL = *in.PhotoURL
	}

	if err := u.repo.Update(ctx, spot); err != nil {
		return nil, err
	}
	return spot, nil
}

// Delete removes a listing, subject to the same ownership rule as Update.
func (u *SpotUsecase) Delete(ctx context.Context, caller *authentity.User, id uint) error {
	if _, err := u.authorize(ctx, caller, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

// authorize loads a spot and checks that the caller may mutate it.
func (u *SpotUsecase) authorize(ctx context.Context, caller *authentity.User, id uint) (*entity.Spot, error) {
	spot, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != authentity.RoleAdmin && spot.HostID != caller.ID {
		return nil, domain.ErrNotOwner
	}
	return spot, nil
}
