package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/climate-dashboard/internal/adapter"
	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/handler"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/observability"
	"github.com/MKhiriev/climate-dashboard/internal/server"
	"github.com/MKhiriev/climate-dashboard/internal/service"
	"github.com/MKhiriev/climate-dashboard/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("climate-dashboard")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("password_storage", cfg.App.PasswordStorage).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	weather, err := adapter.NewWeatherAdapter(cfg.Adapter.Weather, clockwork.NewRealClock(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating weather adapter")
	}

	metrics := observability.NewMetrics()

	services, err := service.NewServices(storages, weather, metrics, *cfg, clockwork.NewRealClock(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
