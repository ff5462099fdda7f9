// Copyright (c) 2026 CyberSage. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cybersage/api/internal/platform/apperr"
	"github.com/cybersage/api/internal/platform/ctxutil"
	"github.com/cybersage/api/internal/platform/sec"
	"github.com/cybersage/api/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Identity extracts the resolved account identity from the request context.

Returns nil if the request did not pass the identity gate.
*/
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredIdentity ensures the request passed the identity gate and returns the
resolved account.

Returns:
  - *sec.Identity: The loaded account (password hash excluded)
  - error: apperr.Unauthenticated if the request carries no identity
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {

	// Get the resolved identity
	identity := ctxutil.GetIdentity(request.Context())

	// If the gate did not run (or rejected), return an error
	if identity == nil {
		return nil, apperr.Unauthenticated("No token provided")
	}

	return identity, nil
}
