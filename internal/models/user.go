package models

// Role values stored on a user row.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ReservedAdminUsername is the seeded account that must never be deleted.
const ReservedAdminUsername = "admin"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
	DisplayName  string `json:"displayName"`
	Role         string `json:"role"` // admin | user
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
