// Copyright (c) 2026 CyberSage. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/platform/sec"
	"github.com/cybersage/api/pkg/uuidv7"
)

// # Contracts & Types

// TokenCodec defines the contract for minting session tokens.
type TokenCodec interface {
	// GenerateToken creates a signed session token for the given claims set.
	//
	// # Parameters
	//   - userID: The ID of the account (token subject).
	//   - role: The role of the account.
	//   - jobRole: The job-role claim; empty for privileged accounts.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	GenerateToken(userID, role, jobRole string) (string, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, provisioning,
// or login logic must be reviewed carefully.
type Service struct {
	accounts AccountStore
	codec    TokenCodec
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(accounts AccountStore, codec TokenCodec) *Service {
	return &Service{
		accounts: accounts,
		codec:    codec,
	}
}

// # Provisioning Flow

// RegisterInput holds the data required to provision a new account.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
	JobRole  string
}

/*
Register validates, hashes, and persists a brand new account.

Description: Decides the target variant and effective role, rejects duplicates,
and delegates hashing and persistence. No token is issued at this step.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - sec.Role: The effective role the account was created with
  - err: Validation, Conflict, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (sec.Role, error) {

	// Duplicate pre-check across both variants. This is an optimization for a
	// friendlier error path; the store's uniqueness constraint remains the
	// authoritative signal under concurrent provisioning.
	if _, err := service.accounts.FindByEmail(context, input.Email); err == nil {
		return "", apperr.Conflict("User with this email already exists")
	}

	// Bootstrap rule: while no privileged account exists, the effective role
	// is forced to first-admin regardless of what was requested.
	privilegedCount, err := service.accounts.CountPrivileged(context)
	if err != nil {
		return "", fmt.Errorf("auth_service_count_privileged_failed: %w", err)
	}

	effectiveRole := sec.Role(input.Role)
	if privilegedCount == 0 {
		effectiveRole = sec.RoleFirstAdmin
	}

	// Select the variant before doing any work with side effects.
	account := &Account{
		ID:    uuidv7.New(),
		Email: input.Email,
		Role:  effectiveRole,
	}

	switch {
	case effectiveRole.IsPrivileged():
		// Privileged variant: no job-role attribute.
	case effectiveRole.IsStandard():
		account.JobRole = input.JobRole
	default:
		return "", apperr.ValidationError("Invalid role")
	}

	// Prevent storing plain-text passwords. bcrypt salts per call, so a failed
	// hash aborts provisioning before any row is written.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("auth_service_hash_failed: %w", err)
	}
	account.PasswordHash = hashedPassword

	// Persist the account; a lost duplicate race surfaces here as Conflict.
	if err := service.accounts.Create(context, account); err != nil {
		return "", err
	}

	return effectiveRole, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	Token   string
	Account *Account
}

/*
Login validates credentials and issues a session token.

Description: Looks the account up across both variants, performs constant-time
password comparison, derives token claims by role, and mints a signed token.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: The signed token and the authenticated account
  - err: Unauthenticated or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Unified lookup by email. The error does not reveal whether the email or
	// the password was wrong, nor which variant was searched.
	account, err := service.accounts.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthenticated("Invalid email or password")
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthenticated("Invalid password")
	}

	// Derive token claims by role: standard accounts embed their job-role,
	// privileged accounts carry the role tag only.
	var token string
	switch {
	case account.Role.IsStandard():
		token, err = service.codec.GenerateToken(account.ID, string(account.Role), account.JobRole)
	case account.Role.IsPrivileged():
		token, err = service.codec.GenerateToken(account.ID, string(account.Role), "")
	default:
		return nil, apperr.Unauthenticated("Invalid role")
	}

	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:   token,
		Account: account,
	}, nil
}

// # Identity Reload

/*
FindIdentity resolves a verified token subject into a live account identity.

Description: Implements the gate's loader contract. The lookup spans both
account variants; the password hash never leaves this method.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - *sec.Identity: The password-hash-free account projection
  - err: apperr.NotFound or storage failures
*/
func (service *Service) FindIdentity(context context.Context, accountID string) (*sec.Identity, error) {
	account, err := service.accounts.FindByID(context, accountID)
	if err != nil {
		return nil, err
	}
	return account.Identity(), nil
}
