package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/models"
)

// Decimal places used by the report and the chart.
const (
	reportPrecision = 2
	chartPrecision  = 1
)

// statsRepository computes aggregate views over "climate_data". All
// grouping and rounding is done by the database engine.
type statsRepository struct {
	*DB
	logger *logger.Logger
}

// NewStatsRepository constructs a [StatsRepository].
func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

// Summary returns the dashboard totals. Averages are nil on an empty store.
func (s *statsRepository) Summary(ctx context.Context) (models.Summary, error) {
	query, args, err := buildSummaryQuery(s.builder)
	if err != nil {
		return models.Summary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		summary                   models.Summary
		avgTemp, avgCO2, avgHumid sql.NullFloat64
	)
	err = s.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(
			&summary.TotalRecords,
			&avgTemp,
			&avgCO2,
			&avgHumid,
			&summary.TotalCountries,
		)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "statsRepository.Summary").Msg("failed to compute summary")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	summary.AvgTemp = nullableFloat(avgTemp)
	summary.AvgCO2 = nullableFloat(avgCO2)
	summary.AvgHumidity = nullableFloat(avgHumid)

	return summary, nil
}

// ReportByCountry returns per-country averages rounded to two decimals,
// hottest country first.
func (s *statsRepository) ReportByCountry(ctx context.Context) ([]models.CountryReport, error) {
	return s.countryReport(ctx, reportPrecision)
}

// ChartRows returns the same grouping as ReportByCountry rounded to one
// decimal.
func (s *statsRepository) ChartRows(ctx context.Context) ([]models.CountryReport, error) {
	return s.countryReport(ctx, chartPrecision)
}

func (s *statsRepository) countryReport(ctx context.Context, places int) ([]models.CountryReport, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountryReportQuery(s.builder, places)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	reports := make([]models.CountryReport, 0)
	err = s.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				report                     models.CountryReport
				temp, co2, humid, rainfall sql.NullFloat64
			)
			if err := rows.Scan(&report.Country, &temp, &co2, &humid, &rainfall, &report.TotalRows); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			report.AvgTemp = nullableFloat(temp)
			report.AvgCO2 = nullableFloat(co2)
			report.AvgHumidity = nullableFloat(humid)
			report.AvgRainfall = nullableFloat(rainfall)
			reports = append(reports, report)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "statsRepository.countryReport").Int("places", places).Msg("failed to compute country report")
		return nil, err
	}

	return reports, nil
}

func nullableFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
