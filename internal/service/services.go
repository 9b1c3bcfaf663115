package service

import (
	"github.com/MKhiriev/climate-dashboard/internal/adapter"
	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/observability"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/jonboulle/clockwork"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	ClimateService ClimateService
	StatsService   StatsService
}

func NewServices(storages *store.Storages, weather adapter.WeatherAdapter, metrics *observability.Metrics, cfg config.StructuredConfig, clock clockwork.Clock, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, cfg.App, clock, logger)
	if err != nil {
		return nil, err
	}

	accountService, err := NewAccountService(storages.UserRepository, storages.ClimateRepository, cfg.App.PasswordStorage, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		AccountService: accountService,
		ClimateService: NewClimateService(storages.ClimateRepository, weather, metrics, logger),
		StatsService:   NewStatsService(storages.StatsRepository, logger),
	}, nil
}
