package http

import (
	"github.com/nmaksimov/userdir/internal/logger"
	"github.com/nmaksimov/userdir/internal/service"
)

// Handler carries the service layer and base logger shared by all route
// handlers. Routes are wired in Init.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	return &Handler{services: services, logger: logger}
}
