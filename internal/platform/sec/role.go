// Copyright (c) 2026 CyberSage. All rights reserved.

package sec

// # Account Roles

// Role represents the authorization level granted to an account.
type Role string

const (
	// RoleFirstAdmin is reserved for the very first account ever provisioned.
	// It bootstraps the initial operator before any other privileged account exists.
	RoleFirstAdmin Role = "first-admin"

	// RoleAdmin is an elevated operator account.
	RoleAdmin Role = "admin"

	// RoleUser is the default role for standard registered users. Standard
	// accounts additionally carry a free-form job-role attribute.
	RoleUser Role = "user"
)

// IsPrivileged reports whether the role belongs to the privileged account variant.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleFirstAdmin
}

// IsStandard reports whether the role belongs to the standard account variant.
func (r Role) IsStandard() bool {
	return r == RoleUser
}
