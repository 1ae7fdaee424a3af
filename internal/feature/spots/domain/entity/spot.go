// Package entity defines the domain entities for the spots feature.
package entity

import "time"

// Spot represents a listing offered by a host.
type Spot struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	HostID        uint      `gorm:"not null;index" json:"hostId"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Location      string    `gorm:"size:255;not null" json:"location"`
	PricePerNight float64   `gorm:"not null" json:"pricePerNight"`
	MaxGuests     int       `gorm:"not null;default:1" json:"maxGuests"`
	Amenities     []string  `gorm:"serializer:json" json:"amenities"`
	PhotoURL      string    `gorm:"size:512" json:"photoUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
