package models

import "strings"

// RoleName is the access tier stored in roles.name
type RoleName string

const (
	RoleAdmin   RoleName = "admin"
	RoleFaculty RoleName = "faculty"
	RoleHOD     RoleName = "hod"
)

// AllRoles lists every role in display order
var AllRoles = []RoleName{RoleAdmin, RoleHOD, RoleFaculty}

// ParseRoleName normalises a client supplied role. Comparison is case-insensitive.
func ParseRoleName(s string) (RoleName, bool) {
	r := RoleName(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleFaculty, RoleHOD:
		return r, true
	}
	return "", false
}

// Label is the human readable role name shown in badges and messages
func (r RoleName) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleHOD:
		return "HOD"
	case RoleFaculty:
		return "Faculty"
	}
	return "No role"
}

// Matches compares two role names ignoring case
func (r RoleName) Matches(other RoleName) bool {
	return strings.EqualFold(string(r), string(other))
}
