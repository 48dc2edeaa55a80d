package domain

import "time"

// Role is the authorization level persisted on a user record. A record
// with no role (or an unrecognised value) is a plain resident with no
// elevated access.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleNone   Role = "none"
)

// ParseRole maps a stored role value to an enumerated Role.
// Absent and unknown values both collapse to RoleNone.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleMember:
		return RoleMember
	default:
		return RoleNone
	}
}

// IsAssignable reports whether r is a value an admin may persist on a
// user or agreement record.
func (r Role) IsAssignable() bool {
	return r == RoleAdmin || r == RoleMember || r == RoleNone
}

// User models a registered account. Email is the unique lookup key;
// Role is the sole authorization signal for gated routes.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
