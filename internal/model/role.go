package model

import "errors"

// ErrInvalidRole is returned when a role string is not one of the four
// known account roles.
var ErrInvalidRole = errors.New("invalid role")

// Role determines which endpoints and data a caller may access.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAnalyst    Role = "analyst"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleStudent, RoleInstructor, RoleAnalyst, RoleAdmin:
		return Role(raw), nil
	}
	return "", ErrInvalidRole
}

// Keyed reports whether self-registration into the role requires an
// enrollment key.
func (r Role) Keyed() bool {
	return r == RoleInstructor || r == RoleAnalyst || r == RoleAdmin
}

// Principal is a resolved role profile attached to an authenticated request.
// It is the only identity object downstream handlers may trust.
type Principal interface {
	ProfileID() int
	ProfileName() string
	ProfileEmail() string
}
