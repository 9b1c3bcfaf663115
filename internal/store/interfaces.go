package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/climate-dashboard/models"
)

// UserRepository persists dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, userID int64) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, email string) error
	UpdatePassword(ctx context.Context, userID int64, password string) error
}

// ClimateRepository persists climate observations.
type ClimateRepository interface {
	Create(ctx context.Context, record models.ClimateRecord) (int64, error)
	Get(ctx context.Context, id int64) (models.ClimateRecord, error)
	ListRecent(ctx context.Context, limit uint64) ([]models.ClimateRecord, error)
	Update(ctx context.Context, record models.ClimateRecord) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// StatsRepository computes derived aggregate views.
type StatsRepository interface {
	Summary(ctx context.Context) (models.Summary, error)
	ReportByCountry(ctx context.Context) ([]models.CountryReport, error)
	ChartRows(ctx context.Context) ([]models.CountryReport, error)
}
