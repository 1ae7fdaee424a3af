package dto

// LoginReq represents the request body for the /api/auth/login endpoint.
// Only presence is checked here; the email is normalized in the usecase
// before the lookup, so padding or case must not fail the bind.
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
