// Copyright (c) 2026 CyberSage. All rights reserved.

package score_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybersage/api/internal/platform/ctxutil"
	"github.com/cybersage/api/internal/platform/sec"
	"github.com/cybersage/api/internal/score"
)

func newTestRouter(store *memoryStore) chi.Router {
	handler := score.NewHandler(score.NewService(store))
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

// do issues a request, optionally carrying a resolved identity the way the
// gate middleware would attach it.
func do(router http.Handler, method, path, body string, identity *sec.Identity) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if identity != nil {
		request = request.WithContext(ctxutil.WithIdentity(request.Context(), identity))
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func standardIdentity() *sec.Identity {
	return &sec.Identity{
		ID:      "user-1",
		Email:   "dev@cybersage.app",
		Role:    sec.RoleUser,
		JobRole: "frontend-developer",
	}
}

/*
TestHTTP_MyScore verifies both score states and the missing-identity guard.
*/
func TestHTTP_MyScore(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	// 1. No identity attached (route reached without the gate).
	recorder := do(router, http.MethodGet, "/quiz/my-score", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Authenticated but no recorded score.
	recorder = do(router, http.MethodGet, "/quiz/my-score", "", standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No score found")
	assert.Contains(t, recorder.Body.String(), `"score":0`)

	// 3. Recorded score comes back without the message.
	store.scores["user-1"] = 60
	recorder = do(router, http.MethodGet, "/quiz/my-score", "", standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"score":60`)
	assert.NotContains(t, recorder.Body.String(), "No score found")
}

/*
TestHTTP_UpdateScore verifies accumulation and the numeric-field validation.
*/
func TestHTTP_UpdateScore(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	// 1. Missing score field.
	recorder := do(router, http.MethodPost, "/quiz/update-score", `{}`, standardIdentity())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Score must be a number")

	// 2. Non-numeric score fails JSON decoding.
	recorder = do(router, http.MethodPost, "/quiz/update-score", `{"score":"forty"}`, standardIdentity())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	// 3. Valid submissions accumulate.
	recorder = do(router, http.MethodPost, "/quiz/update-score", `{"score":40}`, standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"score":40`)

	recorder = do(router, http.MethodPost, "/quiz/update-score", `{"score":25}`, standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"score":65`)
	assert.Equal(t, 65, store.scores["user-1"])

	// 4. A zero submission is legitimate (failed quiz run).
	recorder = do(router, http.MethodPost, "/quiz/update-score", `{"score":0}`, standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 65, store.scores["user-1"])
}

/*
TestHTTP_ScoresByJobRole verifies the cohort leaderboard and its guards.
*/
func TestHTTP_ScoresByJobRole(t *testing.T) {
	store := newMemoryStore()
	router := newTestRouter(store)

	store.jobRoles["user-1"] = "frontend-developer"
	store.jobRoles["user-2"] = "frontend-developer"
	store.scores["user-2"] = 80

	// 1. Privileged identities carry no job role.
	admin := &sec.Identity{ID: "admin-1", Email: "ops@cybersage.app", Role: sec.RoleAdmin}
	recorder := do(router, http.MethodGet, "/quiz/scores-by-jobrole", "", admin)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Job role not found in token")

	// 2. Standard identity sees its cohort.
	recorder = do(router, http.MethodGet, "/quiz/scores-by-jobrole", "", standardIdentity())
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user-2")

	// 3. A cohort with no accounts is NOT_FOUND.
	loner := standardIdentity()
	loner.JobRole = "data-scientist"
	recorder = do(router, http.MethodGet, "/quiz/scores-by-jobrole", "", loner)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No users found with this job role")
}
