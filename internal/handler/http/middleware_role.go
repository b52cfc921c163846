// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// requireRoles is an HTTP middleware that restricts a route to the given
// roles. It must run behind [Handler.auth]: a request without an identity
// in its context is rejected with 401 rather than 403, keeping the two
// failure classes distinct.
//
// ADMIN passes every role gate regardless of the listed roles. A caller
// whose role is not in the set gets 403 with the accepted roles named in
// the message.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			authUser, ok := utils.GetAuthUserFromContext(r.Context())
			if !ok {
				log.Err(ErrNotAuthenticated).Msg("role gate reached without identity")
				utils.WriteError(w, ErrNotAuthenticated.Error(), http.StatusUnauthorized)
				return
			}

			if !authUser.Role.Satisfies(roles...) {
				log.Warn().
					Int64("user_id", authUser.UserID).
					Str("role", authUser.Role.String()).
					Str("path", r.URL.Path).
					Msg("access denied by role gate")
				utils.WriteError(w, fmt.Sprintf("access restricted to roles: %s", roleNames(roles)), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleNames(roles []models.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	return strings.Join(names, ", ")
}
