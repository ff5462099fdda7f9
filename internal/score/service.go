// Copyright (c) 2026 CyberSage. All rights reserved.

package score

import (
	"context"

	"github.com/cybersage/api/internal/platform/apperr"
)

// Service implements score tracking around a [Store].
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// MyScore returns the caller's score entry, or (nil, nil) when no score has
// been recorded yet. The delivery layer shapes the "no score" response.
func (service *Service) MyScore(context context.Context, userID string) (*Entry, error) {
	return service.store.Get(context, userID)
}

// Record adds a submitted quiz result to the caller's running total and
// returns the new total.
func (service *Service) Record(context context.Context, userID string, points int) (int, error) {
	return service.store.Add(context, userID, points)
}

// ByJobRole returns the score leaderboard of one job-role cohort.
func (service *Service) ByJobRole(context context.Context, jobRole string) ([]JobRoleEntry, error) {
	entries, err := service.store.ListByJobRole(context, jobRole)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, apperr.NotFoundMsg("No users found with this job role")
	}

	return entries, nil
}
