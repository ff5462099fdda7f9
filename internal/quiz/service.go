// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import (
	"context"
	"log/slog"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/platform/constants"
	"github.com/cybersage/api/pkg/uuidv7"
)

// Service implements quiz question use cases with a cache-aside read path.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListByRole returns all questions for a quiz role track.
//
// Reads go through the cache; a miss falls through to PostgreSQL and
// repopulates the entry. Cache failures are logged, never fatal.
func (service *Service) ListByRole(context context.Context, role string) ([]Question, error) {
	if cached, err := service.cache.GetRole(context, role); err != nil {
		service.logger.Warn("quiz_cache_read_failed", slog.String("role", role), slog.Any("error", err))
	} else if cached != nil {
		return cached, nil
	}

	questions, err := service.repo.ListByRole(context, role)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, apperr.NotFoundMsg("No questions found for the role: " + role)
	}

	if err := service.cache.SetRole(context, role, questions, constants.QuizRoleCacheTTL); err != nil {
		service.logger.Warn("quiz_cache_write_failed", slog.String("role", role), slog.Any("error", err))
	}

	return questions, nil
}

// ListAll returns every question across all roles.
func (service *Service) ListAll(context context.Context) ([]Question, error) {
	questions, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}

	if len(questions) == 0 {
		return nil, apperr.NotFoundMsg("No quiz questions found")
	}

	return questions, nil
}

// CreateInput carries a new question. All fields are required.
type CreateInput struct {
	Question    string
	Options     []string
	Answer      string
	Description string
	Difficulty  string
	Role        string
	Category    string
	Link        string
}

// Create validates and persists a new question, then invalidates the cache
// entry of its role track.
func (service *Service) Create(context context.Context, input CreateInput) (*Question, error) {
	if !ValidDifficulty(input.Difficulty) {
		return nil, apperr.ValidationError("Invalid difficulty level")
	}

	question := &Question{
		ID:          uuidv7.New(),
		Question:    input.Question,
		Options:     input.Options,
		Answer:      input.Answer,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Role:        input.Role,
		Category:    input.Category,
		Link:        input.Link,
	}

	if err := service.repo.Create(context, question); err != nil {
		return nil, err
	}

	service.invalidate(context, question.Role)
	return question, nil
}

// Update applies a partial update to an existing question.
//
// If the update moves the question to a different role track, both the old
// and the new track's cache entries are invalidated.
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Question, error) {
	question, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	previousRole := question.Role

	if input.Difficulty != nil {
		if !ValidDifficulty(*input.Difficulty) {
			return nil, apperr.ValidationError("Invalid difficulty level")
		}
		question.Difficulty = *input.Difficulty
	}
	if input.Question != nil {
		question.Question = *input.Question
	}
	if input.Options != nil {
		question.Options = input.Options
	}
	if input.Answer != nil {
		question.Answer = *input.Answer
	}
	if input.Description != nil {
		question.Description = *input.Description
	}
	if input.Role != nil {
		question.Role = *input.Role
	}
	if input.Category != nil {
		question.Category = *input.Category
	}
	if input.Link != nil {
		question.Link = *input.Link
	}

	if err := service.repo.Update(context, question); err != nil {
		return nil, err
	}

	service.invalidate(context, previousRole)
	if question.Role != previousRole {
		service.invalidate(context, question.Role)
	}

	return question, nil
}

// Delete removes a question and invalidates its role track's cache entry.
func (service *Service) Delete(context context.Context, id string) error {
	question, err := service.repo.GetByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.invalidate(context, question.Role)
	return nil
}

// invalidate drops a role track's cache entry, logging on failure.
func (service *Service) invalidate(context context.Context, role string) {
	if err := service.cache.InvalidateRole(context, role); err != nil {
		service.logger.Warn("quiz_cache_invalidate_failed", slog.String("role", role), slog.Any("error", err))
	}
}
