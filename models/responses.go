// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package models

// ErrorResponse is the JSON body of every non-2xx response. The message is
// human-readable and must never leak internal error detail for 5xx replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AuthResponse is the JSON body returned by signup and login: the sanitized
// account view plus the signed bearer token.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// MessageResponse carries a plain informational message (e.g. logout).
type MessageResponse struct {
	Message string `json:"message"`
}
