package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/models"
)

// climateRepository is the SQL implementation of [ClimateRepository] over
// the "climate_data" table.
//
// Every method obtains a context-scoped logger via [logger.FromContext] and
// runs its statement on a connection scoped by [DB.WithConn].
type climateRepository struct {
	*DB
	logger *logger.Logger
}

// NewClimateRepository constructs a [ClimateRepository].
func NewClimateRepository(db *DB, logger *logger.Logger) ClimateRepository {
	logger.Debug().Msg("creating climate repository")
	return &climateRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts record and returns the generated id. record.ID is ignored.
func (c *climateRepository) Create(ctx context.Context, record models.ClimateRecord) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(c.builder, record)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).
			Str("func", "climateRepository.Create").
			Str("country", record.Country).
			Str("region", record.Region).
			Msg("failed to insert climate record")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// Get returns the record with the given id, or [ErrRecordNotFound].
func (c *climateRepository) Get(ctx context.Context, id int64) (models.ClimateRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(c.builder, id)
	if err != nil {
		return models.ClimateRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.ClimateRecord
	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		return scanRecord(conn.QueryRowContext(ctx, query, args...), &record)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.ClimateRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "climateRepository.Get").Int64("id", id).Msg("failed to select climate record")
		return models.ClimateRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// ListRecent returns up to limit records, newest id first.
func (c *climateRepository) ListRecent(ctx context.Context, limit uint64) ([]models.ClimateRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecentRecordsQuery(c.builder, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	results := make([]models.ClimateRecord, 0, limit)
	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var record models.ClimateRecord
			if err := scanRecord(rows, &record); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			results = append(results, record)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "climateRepository.ListRecent").Uint64("limit", limit).Msg("failed to list climate records")
		return nil, err
	}

	return results, nil
}

// Update overwrites every field of the record identified by record.ID.
// It returns [ErrRecordNotFound] when no such record exists.
func (c *climateRepository) Update(ctx context.Context, record models.ClimateRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(c.builder, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "climateRepository.Update").Int64("id", record.ID).Msg("failed to update climate record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete removes the record with the given id. Deleting a missing record
// is not an error.
func (c *climateRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(c.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "climateRepository.Delete").Int64("id", id).Msg("failed to delete climate record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Count returns the number of stored records.
func (c *climateRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := buildCountRecordsQuery(c.builder)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	err = c.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&total)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "climateRepository.Count").Msg("failed to count climate records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func scanRecord(row rowScanner, record *models.ClimateRecord) error {
	if err := row.Scan(
		&record.ID,
		&record.Country,
		&record.Region,
		&record.Date,
		&record.Temperature,
		&record.Rainfall,
		&record.CO2,
		&record.Humidity,
	); err != nil {
		return err
	}
	record.Date = models.NormalizeDate(record.Date)
	return nil
}
