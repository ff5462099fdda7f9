// Copyright (c) 2026 CyberSage. All rights reserved.

package score_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/score"
)

// memoryStore is an in-memory Store keyed by user ID. The jobRoles map
// stands in for the account table join.
type memoryStore struct {
	scores   map[string]int
	jobRoles map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		scores:   map[string]int{},
		jobRoles: map[string]string{},
	}
}

func (store *memoryStore) Get(_ context.Context, userID string) (*score.Entry, error) {
	if total, ok := store.scores[userID]; ok {
		return &score.Entry{UserID: userID, Score: total}, nil
	}
	return nil, nil
}

func (store *memoryStore) Add(_ context.Context, userID string, delta int) (int, error) {
	store.scores[userID] += delta
	return store.scores[userID], nil
}

func (store *memoryStore) ListByJobRole(_ context.Context, jobRole string) ([]score.JobRoleEntry, error) {
	var entries []score.JobRoleEntry
	for userID, role := range store.jobRoles {
		if role == jobRole {
			entries = append(entries, score.JobRoleEntry{
				UserID: userID,
				Score:  store.scores[userID],
			})
		}
	}
	return entries, nil
}

/*
TestService_MyScore verifies the no-score and recorded-score states.
*/
func TestService_MyScore(t *testing.T) {
	store := newMemoryStore()
	service := score.NewService(store)

	// 1. A user with no recorded score is not an error.
	entry, err := service.MyScore(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, entry)

	// 2. After recording, the entry comes back.
	store.scores["user-1"] = 40
	entry, err = service.MyScore(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, 40, entry.Score)
}

/*
TestService_Record verifies that submitted results accumulate.
*/
func TestService_Record(t *testing.T) {
	store := newMemoryStore()
	service := score.NewService(store)

	total, err := service.Record(context.Background(), "user-1", 30)
	require.NoError(t, err)
	assert.Equal(t, 30, total)

	// A second submission adds to the running total, not replaces it.
	total, err = service.Record(context.Background(), "user-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 80, total)
}

/*
TestService_ByJobRole verifies the cohort leaderboard and its empty case.
*/
func TestService_ByJobRole(t *testing.T) {
	store := newMemoryStore()
	service := score.NewService(store)

	store.jobRoles["user-1"] = "frontend-developer"
	store.jobRoles["user-2"] = "frontend-developer"
	store.jobRoles["user-3"] = "qa-engineer"
	store.scores["user-1"] = 70
	store.scores["user-2"] = 90

	entries, err := service.ByJobRole(context.Background(), "frontend-developer")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// No accounts in the cohort surfaces as NOT_FOUND.
	entries, err = service.ByJobRole(context.Background(), "data-scientist")
	assert.Nil(t, entries)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Equal(t, "No users found with this job role", ae.Message)
}
