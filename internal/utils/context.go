// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AuthUserCtxKey is the key used to store the authenticated identity in the
// request context. Set by the auth middleware after token verification and
// the per-request account re-check; read by handlers and the role gate.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AuthUserCtxKey, authUser)
var AuthUserCtxKey = contextKey("authUser")

// GetAuthUserFromContext retrieves the authenticated identity from the context.
//
// Returns the identity and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	authUser, ok := utils.GetAuthUserFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetAuthUserFromContext(ctx context.Context) (models.AuthUser, bool) {
	authUser, ok := ctx.Value(AuthUserCtxKey).(models.AuthUser)
	return authUser, ok
}
