package http

import (
	"time"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/observability"
	"github.com/MKhiriev/climate-dashboard/internal/service"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
)

type Handler struct {
	services *service.Services
	metrics  *observability.Metrics

	// cookieKey signs the flash cookie.
	cookieKey      string
	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *observability.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		cookieKey:      cfg.App.SecretKey,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
