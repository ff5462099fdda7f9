// Copyright (c) 2026 CyberSage. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/platform/constants"
	"github.com/cybersage/api/internal/platform/ctxutil"
	"github.com/cybersage/api/internal/platform/respond"
	"github.com/cybersage/api/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the gate from the [sec.TokenService]
// implementation, allowing us to easily inject fakes during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// IdentityLoader resolves a verified token subject into a live account identity.
//
// Implementations must check BOTH account variants (standard and privileged) by
// ID: a privileged operator's token is exactly as valid as a standard user's.
type IdentityLoader interface {
	FindIdentity(ctx context.Context, accountID string) (*sec.Identity, error)
}

// RequireIdentity is the per-request authorization checkpoint. It converts a
// session token into a loaded account or rejects the request.
//
// # Flow
//  1. Extract the token: the 'token' cookie is preferred; the Authorization
//     header (value after the first space) is the fallback.
//  2. Verify signature and expiry via [TokenVerifier]. Any verification
//     failure — expired, malformed, wrong signature — is a single 401.
//  3. Reload the account by the token's subject via [IdentityLoader].
//  4. Inject the [*sec.Identity] (password hash excluded by construction)
//     into the request context for downstream handlers.
func RequireIdentity(verifier TokenVerifier, loader IdentityLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Token Extraction ───────────────────────────────────────────
			tokenStr := ExtractToken(request)
			if tokenStr == "" {
				respond.Error(writer, request, apperr.Unauthenticated("No token provided"))
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(tokenStr)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthenticated("Invalid token"))
				return
			}

			// ── 3. Identity Reload ────────────────────────────────────────────
			// The token alone is not trusted as an account snapshot: the account
			// must still exist at request time.
			identity, err := loader.FindIdentity(request.Context(), claims.UserID)
			if err != nil || identity == nil {
				respond.Error(writer, request, apperr.Unauthenticated("User not found"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ExtractToken pulls the session token from the request, preferring the
// session cookie over the Authorization header.
//
// The header is parsed bearer-style: everything after the first space-delimited
// segment. "Bearer abc" yields "abc"; a bare token with no space yields "".
func ExtractToken(request *http.Request) string {
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := request.Header.Get(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
