// Copyright (c) 2026 CyberSage. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, cookie settings, and cross-cutting keys that are
shared between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer and session cookie configuration.
  - Caching: Redis key prefixes and TTLs.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "cybersage-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "cybersage.app"

	// SessionCookieName is the name of the cookie that carries the session token.
	SessionCookieName = "token"

	// SessionCookieTTL is the lifetime of the session cookie. It is independent
	// of the token's own embedded expiry; both are enforced.
	SessionCookieTTL = 24 * time.Hour

	// SessionCookieSentinel replaces the token value when the session is terminated.
	SessionCookieSentinel = "logout"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderAuthorization = "Authorization"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
	FieldScore   = "score"
)

// # Database Schemas

const (
	SchemaUsers = "users"
	SchemaQuiz  = "quiz"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixQuizRole keys the cached question list for a quiz role.
	RedisPrefixQuizRole = "quiz:role:"

	// QuizRoleCacheTTL bounds staleness of the role-scoped question cache.
	QuizRoleCacheTTL = 5 * time.Minute
)
