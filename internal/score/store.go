// Copyright (c) 2026 CyberSage. All rights reserved.

package score

import "context"

// Store persists accumulated quiz scores.
//
// Get reports a missing row as (nil, nil): a user with no recorded score
// is an expected state, not an error.
type Store interface {
	Get(context context.Context, userID string) (*Entry, error)
	Add(context context.Context, userID string, delta int) (int, error)
	ListByJobRole(context context.Context, jobRole string) ([]JobRoleEntry, error)
}
