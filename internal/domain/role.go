package domain

import "errors"

// Role represents an application role resolved from the identity provider
type Role string

const (
	RoleUser      Role = "user"
	RoleAttendant Role = "attendant"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

// ErrUnknownRole возвращается при попытке распарсить неизвестную роль
var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a role string against the closed role enum
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAttendant, RoleManager, RoleAdmin:
		return Role(s), nil
	default:
		return "", ErrUnknownRole
	}
}

// IsStaff returns true for roles that operate centre-side dashboards
func (r Role) IsStaff() bool {
	return r == RoleAttendant || r == RoleManager || r == RoleAdmin
}

// Identity is the per-request authenticated principal
type Identity struct {
	UserID string
	Role   Role
}
