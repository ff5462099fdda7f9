// Copyright (c) 2026 CyberSage. All rights reserved.

package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/platform/config"
	"github.com/cybersage/api/internal/platform/sec"
	"github.com/cybersage/api/internal/quiz"
	"github.com/cybersage/api/internal/score"
	"github.com/cybersage/api/internal/users/auth"
)

// The fakes below stand in for the stores and codecs wired in main.go, so the
// full route table can be exercised exactly as clients see it.

type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (f *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == f.validToken {
		return f.claims, nil
	}
	return nil, errors.New("signature mismatch")
}

func (f *fakeVerifier) GenerateToken(userID, role, jobRole string) (string, error) {
	return f.validToken, nil
}

type fakeLoader struct {
	identity *sec.Identity
}

func (f *fakeLoader) FindIdentity(_ context.Context, accountID string) (*sec.Identity, error) {
	if f.identity != nil && f.identity.ID == accountID {
		return f.identity, nil
	}
	return nil, errors.New("no such account")
}

type fakeAccountStore struct {
	accounts map[string]*auth.Account
}

func (store *fakeAccountStore) Create(_ context.Context, account *auth.Account) error {
	store.accounts[account.Email] = account
	return nil
}

func (store *fakeAccountStore) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	if account, ok := store.accounts[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeAccountStore) FindByID(_ context.Context, id string) (*auth.Account, error) {
	for _, account := range store.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeAccountStore) CountPrivileged(_ context.Context) (int, error) {
	return 0, nil
}

type fakeQuizRepository struct {
	questions []quiz.Question
}

func (repo *fakeQuizRepository) ListByRole(_ context.Context, role string) ([]quiz.Question, error) {
	var result []quiz.Question
	for _, question := range repo.questions {
		if question.Role == role {
			result = append(result, question)
		}
	}
	return result, nil
}

func (repo *fakeQuizRepository) ListAll(_ context.Context) ([]quiz.Question, error) {
	return repo.questions, nil
}

func (repo *fakeQuizRepository) GetByID(_ context.Context, id string) (*quiz.Question, error) {
	for _, question := range repo.questions {
		if question.ID == id {
			return &question, nil
		}
	}
	return nil, apperr.NotFound("Quiz question")
}

func (repo *fakeQuizRepository) Create(_ context.Context, question *quiz.Question) error {
	repo.questions = append(repo.questions, *question)
	return nil
}

func (repo *fakeQuizRepository) Update(_ context.Context, question *quiz.Question) error {
	return nil
}

func (repo *fakeQuizRepository) Delete(_ context.Context, id string) error {
	return nil
}

type noopCache struct{}

func (noopCache) GetRole(_ context.Context, _ string) ([]quiz.Question, error) { return nil, nil }
func (noopCache) SetRole(_ context.Context, _ string, _ []quiz.Question, _ time.Duration) error {
	return nil
}
func (noopCache) InvalidateRole(_ context.Context, _ string) error { return nil }

type fakeScoreStore struct {
	scores map[string]int
}

func (store *fakeScoreStore) Get(_ context.Context, userID string) (*score.Entry, error) {
	if total, ok := store.scores[userID]; ok {
		return &score.Entry{UserID: userID, Score: total}, nil
	}
	return nil, nil
}

func (store *fakeScoreStore) Add(_ context.Context, userID string, delta int) (int, error) {
	store.scores[userID] += delta
	return store.scores[userID], nil
}

func (store *fakeScoreStore) ListByJobRole(_ context.Context, jobRole string) ([]score.JobRoleEntry, error) {
	return nil, nil
}

// newComposedServer builds the full route table the way main.go does, with a
// seeded catalogue, a recorded score, and one known session token.
func newComposedServer() *Server {
	logger := slog.New(slog.DiscardHandler)

	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-1", Role: "user", JobRole: "frontend-developer"},
	}
	loader := &fakeLoader{
		identity: &sec.Identity{
			ID:      "user-1",
			Email:   "dev@cybersage.app",
			Role:    sec.RoleUser,
			JobRole: "frontend-developer",
		},
	}

	authStore := &fakeAccountStore{accounts: map[string]*auth.Account{}}
	authHandler := auth.NewHandler(auth.NewService(authStore, verifier), false)

	quizRepo := &fakeQuizRepository{questions: []quiz.Question{{
		ID:         "q1",
		Question:   "What does XSS stand for?",
		Options:    []string{"Cross-site scripting", "None"},
		Answer:     "Cross-site scripting",
		Difficulty: quiz.DifficultyEasy,
		Role:       "frontend-developer",
	}}}
	quizHandler := quiz.NewHandler(quiz.NewService(quizRepo, noopCache{}, logger))

	scoreStore := &fakeScoreStore{scores: map[string]int{"user-1": 40}}
	scoreHandler := score.NewHandler(score.NewService(scoreStore))

	cfg := &config.Config{ServerPort: "4000", Environment: "development"}

	return NewServer(cfg, logger, verifier, loader, Handlers{
		Liveness:  func(writer http.ResponseWriter, _ *http.Request) { writer.WriteHeader(http.StatusOK) },
		Readiness: func(writer http.ResponseWriter, _ *http.Request) { writer.WriteHeader(http.StatusOK) },
		Auth:      authHandler,
		Quiz:      quizHandler,
		Score:     scoreHandler,
	})
}

func hit(server *Server, method, path, body string, sessionToken string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionToken != "" {
		request.AddCookie(&http.Cookie{Name: "token", Value: sessionToken})
	}
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_PublicQuizRoutes verifies that the composed route table serves the
question catalogue without a session.
*/
func TestServer_PublicQuizRoutes(t *testing.T) {
	server := newComposedServer()

	// 1. Full catalogue, no token.
	recorder := hit(server, http.MethodGet, "/api/v1/quiz", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "What does XSS stand for?")

	// 2. Role track, no token.
	recorder = hit(server, http.MethodGet, "/api/v1/quiz/frontend-developer", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"q1"`)

	// 3. Creation, no token.
	recorder = hit(server, http.MethodPost, "/api/v1/quiz", `{
		"question": "What does CSRF stand for?",
		"options": ["Cross-site request forgery", "None"],
		"answer": "Cross-site request forgery",
		"description": "CSRF tricks a browser into sending authenticated requests.",
		"difficulty": "medium",
		"role": "backend-developer",
		"category": "web-security",
		"link": "https://owasp.org/www-community/attacks/csrf"
	}`, "")
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

/*
TestServer_GatedScoreRoutes verifies that the score endpoints sit behind the
identity gate on the composed route table, and that /quiz/my-score reaches the
score handler rather than the role-track lookup.
*/
func TestServer_GatedScoreRoutes(t *testing.T) {
	server := newComposedServer()

	// 1. Without a session every score route is rejected at the gate.
	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/quiz/my-score"},
		{http.MethodPost, "/api/v1/quiz/update-score"},
		{http.MethodGet, "/api/v1/quiz/scores-by-jobrole"},
	} {
		recorder := hit(server, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, route.path)
		assert.Contains(t, recorder.Body.String(), "No token provided", route.path)
	}

	// 2. With a valid session, /quiz/my-score returns the recorded score —
	// the static segment outranks the {role} param node, so the response is
	// the score payload, never a question list for role "my-score".
	recorder := hit(server, http.MethodGet, "/api/v1/quiz/my-score", "", "good-token")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"score":40`)
	assert.NotContains(t, recorder.Body.String(), "question")

	// 3. Score submission accumulates through the gate.
	recorder = hit(server, http.MethodPost, "/api/v1/quiz/update-score", `{"score":20}`, "good-token")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"score":60`)

	// 4. The cohort route also resolves to the score handler: an empty cohort
	// is its NOT_FOUND, not a question-list miss.
	recorder = hit(server, http.MethodGet, "/api/v1/quiz/scores-by-jobrole", "", "good-token")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No users found with this job role")
}

/*
TestServer_AuthAndHealthRoutes verifies the auth mount and the infrastructure
probes on the composed route table.
*/
func TestServer_AuthAndHealthRoutes(t *testing.T) {
	server := newComposedServer()

	recorder := hit(server, http.MethodPost, "/api/v1/auth/register",
		`{"email":"first@cybersage.app","password":"hunter22","role":"user","jobrole":"frontend-developer"}`, "")
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = hit(server, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = hit(server, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}
