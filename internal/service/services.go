package service

import (
	"github.com/MKhiriev/go-auth-api/internal/config"
	"github.com/MKhiriev/go-auth-api/internal/logger"
	"github.com/MKhiriev/go-auth-api/internal/store"
)

// Services aggregates the application's business services. Constructed once
// at process start and passed by reference into handlers and middleware, so
// tests can substitute either service through the interfaces.
type Services struct {
	CredentialService CredentialService
	UserService       UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	credentials := NewCredentialService(cfg.App, logger)

	return &Services{
		CredentialService: credentials,
		UserService:       NewUserService(storages.UserRepository, credentials, logger),
	}
}
