package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/models"
)

// statsService exposes the aggregate views. Rounding and grouping happen in
// the database.
type statsService struct {
	stats store.StatsRepository

	logger *logger.Logger
}

func NewStatsService(stats store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{stats: stats, logger: logger}
}

func (s *statsService) Summary(ctx context.Context) (models.Summary, error) {
	summary, err := s.stats.Summary(ctx)
	if err != nil {
		return models.Summary{}, fmt.Errorf("summary failed: %w", err)
	}
	return summary, nil
}

func (s *statsService) Report(ctx context.Context) ([]models.CountryReport, error) {
	report, err := s.stats.ReportByCountry(ctx)
	if err != nil {
		return nil, fmt.Errorf("country report failed: %w", err)
	}
	return report, nil
}

// ChartSeries reshapes the one-decimal country report into parallel arrays.
func (s *statsService) ChartSeries(ctx context.Context) (models.ChartSeries, error) {
	rows, err := s.stats.ChartRows(ctx)
	if err != nil {
		return models.ChartSeries{}, fmt.Errorf("chart data failed: %w", err)
	}
	return models.NewChartSeries(rows), nil
}
