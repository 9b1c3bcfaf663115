package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/climate-dashboard/models"
)

// AuthService establishes and verifies browser sessions.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	Register(ctx context.Context, registration models.Registration) (models.User, error)
	IssueSession(ctx context.Context, session models.Session) (models.SessionToken, error)
	ParseSession(ctx context.Context, tokenString string) (models.Session, error)
}

// AccountService manages the account of the logged-in user.
type AccountService interface {
	Profile(ctx context.Context, session models.Session) (models.Profile, error)
	UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (models.Session, error)
	ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error
	ListResearchers(ctx context.Context) ([]models.Researcher, error)
}

// ClimateService manages climate records, including live ingestion.
type ClimateService interface {
	Create(ctx context.Context, record models.ClimateRecord) (int64, error)
	Get(ctx context.Context, id int64) (models.ClimateRecord, error)
	RecentRecords(ctx context.Context) ([]models.ClimateRecord, error)
	Update(ctx context.Context, record models.ClimateRecord) error
	Delete(ctx context.Context, id int64) error
	FetchLive(ctx context.Context, city string) (models.ClimateRecord, error)
	SuggestedCities() []string
}

// StatsService serves the aggregate views.
type StatsService interface {
	Summary(ctx context.Context) (models.Summary, error)
	Report(ctx context.Context) ([]models.CountryReport, error)
	ChartSeries(ctx context.Context) (models.ChartSeries, error)
}
