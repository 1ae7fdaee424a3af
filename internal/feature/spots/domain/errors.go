// Package domain defines domain-level errors for the spots feature.
package domain

import "errors"

var (
	// ErrSpotNotFound indicates that no spot exists with the given ID.
	ErrSpotNotFound = errors.New("spot not found")

	// ErrNotOwner indicates that the caller is not the host that owns the
	// spot and is not an admin.
	ErrNotOwner = errors.New("spot belongs to another host")
)
