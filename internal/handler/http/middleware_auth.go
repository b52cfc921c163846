package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, validates it via [service.Auth.Authenticate] and, on success,
// stores the authenticated identity in the request context under
// [utils.AuthUserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent.
//   - The header is not a well-formed "Bearer <token>" value.
//   - The token is invalid or expired.
//   - The account referenced by the token is inactive or gone. This last
//     check re-reads the account on every request, so a deactivation cuts
//     off outstanding tokens immediately.
//
// Storage failures during the account re-check map to HTTP 500, not 401:
// the caller's token may well be fine.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		authUser, err := h.services.Auth.Authenticate(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
				log.Err(err).Msg("token rejected")
				utils.WriteError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
				return
			case errors.Is(err, service.ErrAccountInactiveOrMissing):
				log.Err(err).Msg("account rejected")
				utils.WriteError(w, service.ErrAccountInactiveOrMissing.Error(), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("unexpected error occurred during authentication")
				utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated identity in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, authUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
