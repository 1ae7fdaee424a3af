// Package adapters provides the repository implementations for the spots feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"spots_backend/internal/feature/spots/domain"
	"spots_backend/internal/feature/spots/domain/entity"
	"spots_backend/internal/feature/spots/usecase"
)

// spotPostgres is the PostgreSQL implementation of the SpotRepository interface.
type spotPostgres struct {
	db *gorm.DB
}

var _ usecase.SpotRepository = (*spotPostgres)(nil)

// NewSpotPostgres creates a new spotPostgres repository with the given DB connection.
func NewSpotPostgres(db *gorm.DB) *spotPostgres {
	return &spotPostgres{db: db}
}

// List returns all spots, newest first.
func (r *spotPostgres) List(ctx context.Context) ([]entity.Spot, error) {
	var spots []entity.Spot
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// ListByHost returns the spots owned by the given host, newest first.
func (r *spotPostgres) ListByHost(ctx context.Context, hostID uint) ([]entity.Spot, error) {
	var spots []entity.Spot
	if err := r.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

// FindByID retrieves a spot by ID.
// It returns domain.ErrSpotNotFound if the spot does not exist.
func (r *spotPostgres) FindByID(ctx context.Context, id uint) (*entity.Spot, error) {
	var s entity.Spot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new spot.
func (r *spotPostgres) Create(ctx context.Context, spot *entity.Spot) error {
	return r.db.WithContext(ctx).Create(spot).Error
}

// Update saves all fields of the given spot.
func (r *spotPostgres) Update(ctx context.Context, spot *entity.Spot) error {
	return r.db.WithContext(ctx).Save(spot).Error
}

// Delete removes a spot by ID.
// It returns domain.ErrSpotNotFound if no row was deleted.
func (r *spotPostgres) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Spot{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrSpotNotFound
	}
	return nil
}
