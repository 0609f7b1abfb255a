package service

import (
	"github.com/organizemymind/go-user-api/internal/config"
	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/store"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(storages.UserRepository, logger)

	return &Services{
		UserService:    userService,
		AuthService:    NewAuthService(userService, storages.UserRepository, cfg.App, logger),
		AppInfoService: appInfoService,
	}, nil
}
