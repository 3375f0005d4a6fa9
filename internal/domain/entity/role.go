// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the type of role an account can have in the system.
type Role string

const (
	// RoleStudent indicates a student account.
	RoleStudent Role = "Student"
	// RoleCompany indicates a company (recruiter) account.
	RoleCompany Role = "Company"
	// RoleAdmin indicates an administrator, provisioned out-of-band.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleCompany, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "student":
		return RoleStudent, true
	case "company":
		return RoleCompany, true
	case "admin":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// SelfServiceRole is the subset of roles an account may claim at registration.
type SelfServiceRole Role

const (
	SelfServiceStudent = SelfServiceRole(RoleStudent)
	SelfServiceCompany = SelfServiceRole(RoleCompany)
)

// Role widens the self-service role back to the full enumeration.
func (r SelfServiceRole) Role() Role {
	return Role(r)
}

// ParseSelfServiceRole accepts only Student or Company, case-insensitively.
// Admin and anything unknown are rejected.
func ParseSelfServiceRole(s string) (SelfServiceRole, bool) {
	role, ok := ParseRole(s)
	if !ok {
		return "", false
	}

	switch role {
	case RoleStudent:
		return SelfServiceStudent, true
	case RoleCompany:
		return SelfServiceCompany, true
	default:
		return "", false
	}
}
