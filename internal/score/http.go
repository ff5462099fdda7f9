// Copyright (c) 2026 CyberSage. All rights reserved.

package score

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cybersage/api/internal/platform/apperr"
	requestutil "github.com/cybersage/api/internal/platform/request"
	"github.com/cybersage/api/internal/platform/respond"
	"github.com/cybersage/api/internal/platform/validate"
)

// Handler exposes the score endpoints. Every route requires an
// authenticated identity; mount it behind the identity gate.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the score endpoints on the given router.
//
// The patterns carry the full /quiz prefix: score routes live in the quiz
// namespace but must register as flat siblings of the public quiz routes,
// not on a subrouter mounted at /quiz, so that both groups coexist on one
// routing tree with different gating.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/quiz/my-score", handler.myScore)
	router.Post("/quiz/update-score", handler.updateScore)
	router.Get("/quiz/scores-by-jobrole", handler.scoresByJobRole)
}

type updateScoreRequest struct {
	// Pointer distinguishes an absent field from a legitimate zero.
	Score *int `json:"score"`
}

// myScore returns the caller's accumulated score.
// GET /api/v1/quiz/my-score
func (handler *Handler) myScore(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, err := handler.service.MyScore(request.Context(), identity.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if entry == nil {
		respond.OK(writer, map[string]any{
			"message": "No score found",
			"score":   0,
		})
		return
	}

	respond.OK(writer, map[string]any{
		"score": entry.Score,
	})
}

// updateScore adds a submitted quiz result to the caller's total.
// POST /api/v1/quiz/update-score
func (handler *Handler) updateScore(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateScoreRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.Score == nil {
		respond.Error(writer, request, validate.RequiredError("score", "Score must be a number"))
		return
	}

	total, err := handler.service.Record(request.Context(), identity.ID, *input.Score)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"message": "Score updated successfully",
		"score":   total,
	})
}

// scoresByJobRole returns the leaderboard of the caller's job-role cohort.
// GET /api/v1/quiz/scores-by-jobrole
func (handler *Handler) scoresByJobRole(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Privileged accounts carry no job role; the cohort view is only
	// meaningful for standard accounts.
	if identity.JobRole == "" {
		respond.Error(writer, request, apperr.ValidationError("Job role not found in token"))
		return
	}

	entries, err := handler.service.ByJobRole(request.Context(), identity.JobRole)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entries)
}
