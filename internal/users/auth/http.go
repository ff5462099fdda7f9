// Copyright (c) 2026 CyberSage. All rights reserved.

package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cybersage/api/internal/platform/constants"
	requestutil "github.com/cybersage/api/internal/platform/request"
	"github.com/cybersage/api/internal/platform/respond"
	"github.com/cybersage/api/internal/platform/sec"
	"github.com/cybersage/api/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// This handler manages the account lifecycle entry points
// (Registration, Login, Logout).
type Handler struct {
	authService *Service

	// secureCookies marks the session cookie Secure. Enabled only in
	// production-like deployments so local HTTP development still works.
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{
		authService:   service,
		secureCookies: secureCookies,
	}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /register : Provisions a new account.
//   - POST /login    : Authenticates and sets the session cookie.
//   - POST /logout   : Expires the session cookie.
//
// Logout is deliberately ungated: terminating a session does not require
// holding a valid one.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

// # Request Payloads

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	JobRole  string `json:"jobrole"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
Register handles the provisioning of a new account.

POST /api/v1/auth/register

Description: Validates input, checks for email conflicts, resolves the
effective role, and persists the new account. No session is established.

Request:
  - Body: registerRequest (Email, Password, Role, JobRole?)

Response:
  - 201: Message naming the effective role
  - 400: ErrInvalidJSON: Bad input, validation failure, or duplicate email
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// jobrole is required only for the standard-user role.
	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Required(FieldRole, input.Role).
		RequiredIf(FieldJobRole, input.JobRole, input.Role == string(sec.RoleUser))

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	effectiveRole, err := handler.authService.Register(request.Context(), RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		JobRole:  input.JobRole,
	})

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		FieldMessage: string(effectiveRole) + " created successfully",
	})
}

/*
Login authenticates an account and establishes a session.

POST /api/v1/auth/login

Description: Verifies credentials, mints a signed session token, and injects
the session cookie into the response. The success payload is role-shaped:
standard accounts report their job-role as the primary role indicator.

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: Role-shaped payload with a set session cookie
  - 401: ErrUnauthenticated: Invalid credentials or role
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email)
	validator.Required(FieldPassword, input.Password)

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Cookie expiry is fixed at 24h from issuance, independent of the token's
	// own embedded expiry. Both are enforced: the gate verifies the token,
	// the browser drops the cookie.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  time.Now().Add(constants.SessionCookieTTL),
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	account := session.Account
	if account.Role.IsStandard() {
		respond.OK(writer, map[string]string{
			FieldMessage: "User logged in successfully",
			FieldRole:    account.JobRole,
			FieldRoleTag: string(account.Role),
		})
		return
	}

	respond.OK(writer, map[string]string{
		FieldMessage: "User logged in successfully",
		FieldRoleTag: string(account.Role),
	})
}

/*
Logout terminates the current session.

POST /api/v1/auth/logout

Description: Overwrites the session cookie with an already-expired sentinel
value, causing clients to drop it. A still-valid token copy presented via the
Authorization header remains usable until its natural expiry; there is no
server-side revocation list.

Response:
  - 200: Confirmation message with an expired session cookie
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    constants.SessionCookieSentinel,
		Path:     "/",
		Expires:  time.Now(),
		Secure:   handler.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, map[string]string{
		FieldMessage: "User logged out successfully",
	})
}
