// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// ---- Helpers ----

// stubAuthService implements service.Auth with canned responses.
type stubAuthService struct {
	signupUser  models.User
	signupToken models.Token
	signupErr   error

	loginUser  models.User
	loginToken models.Token
	loginErr   error

	authUser models.AuthUser
	authErr  error

	lastToken string
}

func (s *stubAuthService) Signup(_ context.Context, _, _, _ string) (models.User, models.Token, error) {
	return s.signupUser, s.signupToken, s.signupErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (models.User, models.Token, error) {
	return s.loginUser, s.loginToken, s.loginErr
}

func (s *stubAuthService) Authenticate(_ context.Context, tokenString string) (models.AuthUser, error) {
	s.lastToken = tokenString
	return s.authUser, s.authErr
}

func (s *stubAuthService) CreateToken(_ models.User) (models.Token, error) {
	return models.Token{SignedString: "stub-token"}, nil
}

func newHandlerWithAuthService(authSvc service.Auth) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		services: &service.Services{
			Auth: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

// ---- auth middleware tests ----

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	rr := executeAuth(h, "", failingNext(t))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "missing authorization", errorBody(t, rr))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{})

	tests := []struct {
		name   string
		header string
	}{
		{"no token part", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"too many parts", "Bearer a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeAuth(h, tt.header, failingNext(t))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "invalid authorization format", errorBody(t, rr))
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{authErr: service.ErrTokenIsExpiredOrInvalid})

	rr := executeAuth(h, "Bearer bad-token", failingNext(t))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid or expired token", errorBody(t, rr))
}

func TestAuthMiddleware_InactiveAccount(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{authErr: service.ErrAccountInactiveOrMissing})

	rr := executeAuth(h, "Bearer valid-but-deactivated", failingNext(t))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "account inactive or not found", errorBody(t, rr))
}

func TestAuthMiddleware_StorageErrorIs500(t *testing.T) {
	h := newHandlerWithAuthService(&stubAuthService{authErr: assertableError("db down")})

	rr := executeAuth(h, "Bearer token", failingNext(t))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestAuthMiddleware_AttachesIdentity(t *testing.T) {
	authUser := models.AuthUser{UserID: 7, Username: "john", Role: models.RoleStaff}
	stub := &stubAuthService{authUser: authUser}
	h := newHandlerWithAuthService(stub)

	var gotUser models.AuthUser
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotOK = utils.GetAuthUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer good-token", next)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.True(t, gotOK, "identity must be attached to the request context")
	assert.Equal(t, authUser, gotUser)
	assert.Equal(t, "good-token", stub.lastToken)
}

// failingNext fails the test when the middleware lets the request through.
func failingNext(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be reached")
	})
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
