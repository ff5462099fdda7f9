// Copyright (c) 2026 CyberSage. All rights reserved.

package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cybersage/api/internal/platform/request"
	"github.com/cybersage/api/internal/platform/respond"
	"github.com/cybersage/api/internal/platform/validate"
)

// Handler exposes the quiz question endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the question endpoints on the given router.
// All question routes are public: the quiz catalogue is readable and
// maintainable without a session.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/quiz", handler.listAll)
	router.Get("/quiz/{role}", handler.listByRole)
	router.Post("/quiz", handler.create)
	router.Put("/quiz/{id}", handler.update)
	router.Delete("/quiz/{id}", handler.delete)
}

type createQuestionRequest struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Description string   `json:"description"`
	Difficulty  string   `json:"difficulty"`
	Role        string   `json:"role"`
	Category    string   `json:"category"`
	Link        string   `json:"link"`
}

type updateQuestionRequest struct {
	Question    *string  `json:"question"`
	Options     []string `json:"options"`
	Answer      *string  `json:"answer"`
	Description *string  `json:"description"`
	Difficulty  *string  `json:"difficulty"`
	Role        *string  `json:"role"`
	Category    *string  `json:"category"`
	Link        *string  `json:"link"`
}

// listByRole returns the questions of one role track.
// GET /api/v1/quiz/{role}
func (handler *Handler) listByRole(writer http.ResponseWriter, request *http.Request) {
	role := requestutil.Param(request, "role")

	questions, err := handler.service.ListByRole(request.Context(), role)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, questions)
}

// listAll returns every question across all role tracks.
// GET /api/v1/quiz
func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	questions, err := handler.service.ListAll(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, questions)
}

// create adds a new question to the catalogue.
// POST /api/v1/quiz
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createQuestionRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required("question", input.Question).
		Custom("options", len(input.Options) == 0, "This field is required").
		Required("answer", input.Answer).
		Required("description", input.Description).
		Required("difficulty", input.Difficulty).
		Required("role", input.Role).
		Required("category", input.Category).
		Required("link", input.Link)

	if err := validator.ErrWithMessage("All fields are required"); err != nil {
		respond.Error(writer, request, err)
		return
	}

	question, err := handler.service.Create(request.Context(), CreateInput{
		Question:    input.Question,
		Options:     input.Options,
		Answer:      input.Answer,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Role:        input.Role,
		Category:    input.Category,
		Link:        input.Link,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, question)
}

// update applies a partial update to a question.
// PUT /api/v1/quiz/{id}
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input updateQuestionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	question, err := handler.service.Update(request.Context(), id, UpdateInput{
		Question:    input.Question,
		Options:     input.Options,
		Answer:      input.Answer,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Role:        input.Role,
		Category:    input.Category,
		Link:        input.Link,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, question)
}

// delete removes a question from the catalogue.
// DELETE /api/v1/quiz/{id}
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{
		"message": "Quiz deleted successfully",
	})
}
