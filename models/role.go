package models

import "slices"

type Role int

const (
	NO_ROLE Role = iota
	VIEWER
	CONSULTANT
	COORDINATOR
	ADMIN
)

func (r Role) String() string {
	switch r {
	case NO_ROLE:
		return "NO_ROLE"
	case VIEWER:
		return "VIEWER"
	case CONSULTANT:
		return "CONSULTANT"
	case COORDINATOR:
		return "COORDINATOR"
	case ADMIN:
		return "ADMIN"
	default:
		return "UNKNOWN_ROLE"
	}
}

func (r Role) Permissions() []Permission {
	permissions := ROLES_PERMISSIONS[r]
	if permissions == nil {
		return []Permission{}
	}
	return permissions
}

func (r Role) HasPermission(permission Permission) bool {
	return slices.Contains(r.Permissions(), permission)
}

func RoleFromString(s string) Role {
	switch s {
	case "VIEWER":
		return VIEWER
	case "CONSULTANT":
		return CONSULTANT
	case "COORDINATOR":
		return COORDINATOR
	case "ADMIN":
		return ADMIN
	}
	return NO_ROLE
}
