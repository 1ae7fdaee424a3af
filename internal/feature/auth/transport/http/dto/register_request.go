// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /api/auth/register endpoint.
// It uses Gin's binding tags for presence and password length only. Email
// shape is checked by the usecase after normalization, so a padded or
// mixed-case address is trimmed before any validation sees it. Role and
// phone stay loosely typed here; the usecase owns their semantics.
type RegisterReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}
