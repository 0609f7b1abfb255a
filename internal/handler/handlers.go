package handler

import (
	"github.com/organizemymind/go-user-api/internal/config"
	"github.com/organizemymind/go-user-api/internal/handler/http"
	"github.com/organizemymind/go-user-api/internal/logger"
	"github.com/organizemymind/go-user-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
