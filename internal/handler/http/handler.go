// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, authorization, logging, tracing and
// rate limiting are all handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"github.com/go-playground/validator/v10"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/service"
)

type Handler struct {
	services *service.Services
	validate *validator.Validate

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}
