// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("missing authorization")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a well-formed "Bearer <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization format")

	// ErrNotAuthenticated is returned by the role middleware when no
	// identity was attached to the request context, i.e. the route was
	// wired without the auth middleware in front of it.
	ErrNotAuthenticated = errors.New("not authenticated")
)
