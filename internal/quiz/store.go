// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import (
	"context"
	"time"
)

// Repository defines the data access contract for quiz questions.
type Repository interface {
	ListByRole(context context.Context, role string) ([]Question, error)
	ListAll(context context.Context) ([]Question, error)
	GetByID(context context.Context, id string) (*Question, error)
	Create(context context.Context, question *Question) error
	Update(context context.Context, question *Question) error
	Delete(context context.Context, id string) error
}

// Cache defines the volatile store for role-scoped question lists.
//
// A miss is reported as (nil, nil); cache failures are returned so the
// service can log and fall through to the repository.
type Cache interface {
	GetRole(context context.Context, role string) ([]Question, error)
	SetRole(context context.Context, role string, questions []Question, ttl time.Duration) error
	InvalidateRole(context context.Context, role string) error
}
