// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

func executeJSON(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestSignupHandler_Created(t *testing.T) {
	stub := &stubAuthService{
		signupUser:  models.User{UserID: 1, Username: "john", Email: "john@example.com", IsActive: true, Role: models.RoleClient},
		signupToken: models.Token{SignedString: "signed-token"},
	}
	h := newHandlerWithAuthService(stub)

	rr := executeJSON(h.signup, http.MethodPost, "/api/auth/signup",
		`{"username":"john","password":"s3cret-password","email":"john@example.com"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "john", resp.User.Username)
	assert.Empty(t, resp.User.PasswordHash, "password hash must never be serialised")
}

func TestSignupHandler_ValidationNamesField(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	tests := []struct {
		name      string
		body      string
		wantInMsg string
	}{
		{"missing username", `{"password":"s3cret-password"}`, "username"},
		{"missing password", `{"username":"john"}`, "password"},
		{"short password", `{"username":"john","password":"short"}`, "password"},
		{"bad email", `{"username":"john","password":"s3cret-password","email":"not-an-email"}`, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeJSON(h.signup, http.MethodPost, "/api/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, errorBody(t, rr), tt.wantInMsg)
		})
	}
}

func TestSignupHandler_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeJSON(h.signup, http.MethodPost, "/api/auth/signup", `{"username": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSignupHandler_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"username taken", store.ErrUsernameAlreadyExists, "username already exists"},
		{"email taken", store.ErrEmailAlreadyExists, "email already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&stubAuthService{signupErr: tt.err})

			rr := executeJSON(h.signup, http.MethodPost, "/api/auth/signup",
				`{"username":"john","password":"s3cret-password","email":"john@example.com"}`)

			assert.Equal(t, http.StatusConflict, rr.Code)
			assert.Equal(t, tt.wantMsg, errorBody(t, rr))
		})
	}
}

func TestLoginHandler_Success(t *testing.T) {
	stub := &stubAuthService{
		loginUser:  models.User{UserID: 1, Username: "john", IsActive: true, Role: models.RoleClient},
		loginToken: models.Token{SignedString: "signed-token"},
	}
	h := newHandlerWithAuthService(stub)

	rr := executeJSON(h.login, http.MethodPost, "/api/auth/login",
		`{"username":"john","password":"s3cret-password"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{loginErr: service.ErrInvalidCredentials})

	rr := executeJSON(h.login, http.MethodPost, "/api/auth/login",
		`{"username":"john","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid credentials", errorBody(t, rr))
}

func TestLoginHandler_DisabledAccount(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{loginErr: service.ErrAccountDisabled})

	rr := executeJSON(h.login, http.MethodPost, "/api/auth/login",
		`{"username":"john","password":"s3cret-password"}`)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestLogoutHandler(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeJSON(h.logout, http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "logged out", resp.Message)
}

func TestMeHandler_RequiresIdentity(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeJSON(h.me, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeHandler_ReturnsFreshIdentity(t *testing.T) {
	authUser := models.AuthUser{UserID: 7, Username: "john", Email: "john@example.com", Role: models.RoleStaff}
	stub := &stubAuthService{authUser: authUser}
	h := newHandlerWithAuthService(stub)

	// run through the auth middleware so the identity lands in the context
	rr := executeAuth(h, "Bearer good-token", http.HandlerFunc(h.me))

	assert.Equal(t, http.StatusOK, rr.Code)

	// identity is nested under "user", matching signup and login bodies
	var resp struct {
		User models.AuthUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, authUser, resp.User)
}
