// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Achraf El Ghazi

package http

import (
	"errors"
	"net/http"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrAccountDisabled:          http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrAccountInactiveOrMissing: http.StatusUnauthorized,
	service.ErrUnknownRole:              http.StatusBadRequest,
	service.ErrInvalidStatusTransition:  http.StatusConflict,
	service.ErrNotOrderOwner:            http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrSKUAlreadyExists:      http.StatusConflict,
	store.ErrInsufficientStock:     http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNotFound:              http.StatusNotFound,
	store.ErrForeignKeyViolation:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the error as the JSON error body with the status
// from the sentinel map. Errors mapping to 500 keep their detail on the
// server side: the client only ever sees the generic status text.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), status)
		return
	}

	log.Err(err).Int("status", status).Send()

	message := err.Error()
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			// Report the sentinel, not the wrapped chain, so storage
			// detail never leaks into responses.
			message = target.Error()
			break
		}
	}
	utils.WriteError(w, message, status)
}
