package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// idFromURL parses the {id} chi route parameter as a positive int64.
func idFromURL(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// paginationFromQuery reads limit and offset query parameters. Absent or
// unparseable values fall back to a limit of 50 and an offset of 0.
func paginationFromQuery(r *http.Request) (limit, offset uint64) {
	limit = 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}

// validationMessage turns a validator error into a client-facing message
// naming the offending fields, one per failed rule.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request payload"
	}

	parts := make([]string, 0, len(verrs))
	for _, ferr := range verrs {
		field := strings.ToLower(ferr.Field())
		switch ferr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("%s is too short (min %s)", field, ferr.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s is too long (max %s)", field, ferr.Param()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s is not a valid email", field))
		case "gt", "gte":
			parts = append(parts, fmt.Sprintf("%s is out of range", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(parts, "; ")
}
