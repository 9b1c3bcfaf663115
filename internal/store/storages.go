package store

import "github.com/MKhiriev/climate-dashboard/internal/logger"

// Storages groups every repository built on a single pool.
type Storages struct {
	UserRepository    UserRepository
	ClimateRepository ClimateRepository
	StatsRepository   StatsRepository
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ClimateRepository: NewClimateRepository(db, log),
		StatsRepository:   NewStatsRepository(db, log),
	}
}
