package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role is the authorization level carried in a staff token. Identity itself
// is owned by the external auth system; this core only reads it.
type Role string

const (
	RoleScanner   Role = "scanner"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleScanner, RoleOrganizer, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
