package handler

import (
	"github.com/avelichko/notekeeper/internal/config"
	"github.com/avelichko/notekeeper/internal/handler/http"
	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
