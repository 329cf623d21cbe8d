package service

import (
	"github.com/oakmount/siteadmin/internal/config"
	"github.com/oakmount/siteadmin/internal/logger"
	"github.com/oakmount/siteadmin/internal/store"
)

type Services struct {
	AuthService   AuthService
	ConfigService ConfigService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:   authService,
		ConfigService: NewConfigService(storages, logger),
	}, nil
}
