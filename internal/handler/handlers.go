package handler

import (
	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/handler/http"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/observability"
	"github.com/MKhiriev/climate-dashboard/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, metrics *observability.Metrics, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
