// Copyright (c) 2026 CyberSage. All rights reserved.

/*
Package auth implements the account and session management core.

It defines the account entities and the logic for provisioning, credential
verification, and session token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to identity.
*/
package auth

import (
	"time"

	"github.com/cybersage/api/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered account of either variant.
//
// # Variants
//
// The role discriminates the two concrete shapes sharing identity semantics:
//   - Standard ("user"): carries a JobRole classifying the professional track.
//   - Privileged ("admin", "first-admin"): no JobRole.
//
// An email address is unique across the union of both variants; the storage
// layer enforces this with a single uniqueness constraint.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	Role         sec.Role  `json:"role"`
	JobRole      string    `json:"jobrole,omitempty"` // Empty for privileged accounts.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPrivileged reports whether the account is of the privileged variant.
func (a *Account) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}

// Identity returns the password-hash-free projection of the account that is
// attached to request contexts by the identity gate.
func (a *Account) Identity() *sec.Identity {
	return &sec.Identity{
		ID:      a.ID,
		Email:   a.Email,
		Role:    a.Role,
		JobRole: a.JobRole,
	}
}

// # Field Identifiers

// Global field names for validation and response mapping in the auth domain.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldJobRole  = "jobrole"
	FieldRoleTag  = "role_tag"
	FieldMessage  = "message"
)
