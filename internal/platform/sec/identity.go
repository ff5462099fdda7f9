// Copyright (c) 2026 CyberSage. All rights reserved.

package sec

// # Request Identity

// Identity is the account resolved from a verified session token, attached to
// the request context for the duration of one request.
//
// It is deliberately a projection: the password hash never leaves the auth
// domain. Downstream handlers read role and job-role from here, not from the
// token claims directly.
type Identity struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	JobRole string `json:"jobrole,omitempty"`
}
