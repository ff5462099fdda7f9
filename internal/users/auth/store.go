// Copyright (c) 2026 CyberSage. All rights reserved.

package auth

import "context"

// # Account Data Access

// AccountStore defines the data access contract for accounts.
//
// # One interface, two variants
//
// Every lookup spans BOTH account variants. Querying the variants through a
// single polymorphic store (rather than two separately-queried collections)
// is what lets the identity gate resolve any token subject — standard or
// privileged — with one call, and what makes the email-uniqueness invariant
// a single storage-level constraint instead of an application-level check.
type AccountStore interface {

	/*
		Create persists a brand-new account.

		The store's uniqueness constraint on email is the authoritative
		duplicate signal: a violation surfaces as apperr.Conflict even when a
		prior existence check passed (two concurrent provisioning calls race).

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.Conflict on duplicate email, or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByEmail returns the account with the given email, searching both
		variants.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		FindByID returns the account with the given ID, searching both variants.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		CountPrivileged returns the number of privileged accounts (roles
		"admin" and "first-admin"). Provisioning uses a zero count to force
		the first-admin bootstrap role.

		Parameters:
		  - context: context.Context

		Returns:
		  - int: Number of privileged accounts
		  - error: Database retrieval failures
	*/
	CountPrivileged(context context.Context) (int, error)
}
