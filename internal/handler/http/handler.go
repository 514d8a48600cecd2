package http

import (
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/service"
	"github.com/MKhiriev/go-auth-api/internal/utils"
)

type Handler struct {
	services *service.Services

	app    config.App
	logger *logger.Logger
	uuid   *utils.UUIDGenerator
}

func NewHandler(services *service.Services, app config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		app:      app,
		logger:   logger,
		uuid:     utils.NewUUIDGenerator(),
	}
}
