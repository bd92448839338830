package entity

import "time"

// Role represents a staff role
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDoctor    Role = "doctor"
	RoleNurse     Role = "nurse"
	RoleReception Role = "reception"
	RolePatient   Role = "patient"
)

// User represents a staff member or patient account as returned by the
// authentication provider
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"full_name"`
	Role               Role      `json:"role"`
	Roles              []Role    `json:"roles,omitempty"`
	MustChangePassword bool      `json:"must_change_password"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
	UpdatedAt          time.Time `json:"updated_at,omitempty"`
}

func (User) Collection() string {
	return "users"
}

// HasRole reports whether the user may act under the given role.
// The primary role always counts as assigned.
func (u *User) HasRole(role Role) bool {
	if u.Role == role {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
