// Copyright (c) 2026 CyberSage. All rights reserved.

// PostgreSQL implementation of the account store.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types via [dberr.Wrap] to avoid leaking
// storage implementation details.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cybersage/api/internal/platform/dberr"
	"github.com/cybersage/api/internal/platform/sec"
)

// # Account Repository

// PostgresAccountStore implements the AccountStore interface using pgx.
//
// Both account variants live in the users.account table, discriminated by
// role; jobrole is NULL for the privileged variant. The unique index on email
// therefore spans the union of both variants by construction.
type PostgresAccountStore struct {
	pool *pgxpool.Pool
}

// NewAccountStore creates a new PostgreSQL implementation of the AccountStore.
func NewAccountStore(pool *pgxpool.Pool) *PostgresAccountStore {
	return &PostgresAccountStore{pool: pool}
}

/*
Create persists a new account record into the users.account table.

Description: Inserts the account row. A duplicate email is rejected by the
unique index and surfaces as apperr.Conflict — the caller's pre-check is an
optimization only, never the source of truth.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: apperr.Conflict on duplicate email, or connectivity errors
*/
func (store *PostgresAccountStore) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO users.account (
			id, email, passwordhash, role, jobrole, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := store.pool.Exec(context, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.Role,
		nullableJobRole(account),
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return dberr.Wrap(err, "User", "User with this email already exists")
		}
		return fmt.Errorf("postgres_account_store_create_failed: %w", err)
	}

	return nil
}

/*
FindByEmail retrieves an account by its unique email address.

Description: Single lookup covering both account variants.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresAccountStore) FindByEmail(context context.Context, email string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, role, jobrole, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	return store.scanAccount(context, query, email)
}

/*
FindByID retrieves an account by its unique ID.

Description: Primary key resolution covering both account variants — a
privileged operator's token subject resolves exactly like a standard user's.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (store *PostgresAccountStore) FindByID(context context.Context, id string) (*Account, error) {
	const query = `
		SELECT id, email, passwordhash, role, jobrole, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	return store.scanAccount(context, query, id)
}

/*
CountPrivileged returns the number of privileged accounts.

Description: Powers the first-admin bootstrap decision during provisioning.

Parameters:
  - context: context.Context

Returns:
  - int: Count of accounts with role "admin" or "first-admin"
  - error: Execution errors
*/
func (store *PostgresAccountStore) CountPrivileged(context context.Context) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM users.account
		WHERE role = $1 OR role = $2`

	var count int
	err := store.pool.QueryRow(context, query, sec.RoleAdmin, sec.RoleFirstAdmin).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("postgres_account_store_count_privileged_failed: %w", err)
	}

	return count, nil
}

// scanAccount runs a single-row account query and hydrates the entity.
func (store *PostgresAccountStore) scanAccount(context context.Context, query string, arg any) (*Account, error) {
	account := &Account{}
	var jobRole *string

	err := store.pool.QueryRow(context, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Role,
		&jobRole,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "User", "")
	}

	if jobRole != nil {
		account.JobRole = *jobRole
	}

	return account, nil
}

// nullableJobRole maps the empty job-role of privileged accounts to SQL NULL.
func nullableJobRole(account *Account) *string {
	if account.JobRole == "" {
		return nil
	}
	return &account.JobRole
}
