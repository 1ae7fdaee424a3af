// Package dto defines data transfer objects for the spots feature's HTTP transport layer.
package dto

// CreateSpotReq represents the request body for creating a listing.
type CreateSpotReq struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Location      string   `json:"location" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	MaxGuests     int      `json:"maxGuests" binding:"omitempty,gte=1"`
	Amenities     []string `json:"amenities"`
	PhotoURL      string   `json:"photoUrl"`
}

// UpdateSpotReq represents the request body for a partial listing update.
// Pointer fields distinguish "absent" from "set to zero value".
type UpdateSpotReq struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	PricePerNight *float64  `json:"pricePerNight" binding:"omitempty,gt=0"`
	MaxGuests     *int      `json:"maxGuests" binding:"omitempty,gte=1"`
	Amenities     *[]string `json:"amenities"`
	PhotoURL      *string   `json:"photoUrl"`
}
