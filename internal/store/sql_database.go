package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is the managed connection pool shared by every repository.
//
// Statements are built with a squirrel builder whose placeholder format
// matches the driver, so the same query builders serve PostgreSQL ($1) and
// SQLite (?).
type DB struct {
	*sql.DB
	driver          string
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassifier, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:              conn,
		driver:          driver,
		builder:         sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassifier: classifier,
		logger:          log,
	}
}

// NewConnect opens the pool for the configured driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func configurePool(conn *sql.DB, cfg config.DB) {
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
}

// WithConn acquires a single connection from the pool for the duration of
// fn and returns it to the pool on every exit path.
func (db *DB) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

// Driver returns the storage driver name ("postgres" or "sqlite").
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema for the driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify returns the classification of err, Unclassified when no
// classifier is configured.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return Unclassified
	}
	return db.errorClassifier.Classify(err)
}
