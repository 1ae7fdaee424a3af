package entity

// Role controls which operations a user may invoke.
type Role string

const (
	// RoleGuest is the default role for newly registered users.
	RoleGuest Role = "guest"

	// RoleHost may create and manage its own spot listings.
	RoleHost Role = "host"

	// RoleAdmin may manage any listing. Admin accounts are seeded out of
	// band and can never be created through self-registration.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// SelfRegisterable reports whether the role may be requested at registration.
func (r Role) SelfRegisterable() bool {
	return r == RoleGuest || r == RoleHost
}
