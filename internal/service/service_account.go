package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/internal/validators"
	"github.com/MKhiriev/climate-dashboard/models"
)

type accountService struct {
	userRepository    store.UserRepository
	climateRepository store.ClimateRepository
	validator         validators.Validator
	encodePassword    passwordEncoder

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. passwordStorage selects
// the stored form of changed passwords.
func NewAccountService(users store.UserRepository, records store.ClimateRepository, passwordStorage string, logger *logger.Logger) (AccountService, error) {
	encoder, err := newPasswordEncoder(passwordStorage)
	if err != nil {
		return nil, err
	}

	return &accountService{
		userRepository:    users,
		climateRepository: records,
		validator:         validators.NewFormValidator(),
		encodePassword:    encoder,
		logger:            logger,
	}, nil
}

// Profile returns the account of session without its password, together
// with the number of stored climate records.
func (a *accountService) Profile(ctx context.Context, session models.Session) (models.Profile, error) {
	user, err := a.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	total, err := a.climateRepository.Count(ctx)
	if err != nil {
		return models.Profile{}, fmt.Errorf("record count failed: %w", err)
	}

	return models.Profile{User: user.Researcher(), TotalRecords: total}, nil
}

// UpdateProfile overwrites name and email of the session's account and
// returns the refreshed session. Another account already owning the email
// yields store.ErrEmailAlreadyExists.
func (a *accountService) UpdateProfile(ctx context.Context, session models.Session, update models.ProfileUpdate) (models.Session, error) {
	log := logger.FromContext(ctx)

	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	if err := a.validator.Validate(ctx, update); err != nil {
		return models.Session{}, ErrNameAndEmailRequired
	}

	owner, err := a.userRepository.FindByEmail(ctx, update.Email)
	switch {
	case err == nil && owner.UserID != session.UserID:
		log.Warn().Int64("id", session.UserID).Str("email", update.Email).Msg("email belongs to another account")
		return models.Session{}, store.ErrEmailAlreadyExists
	case err != nil && !errors.Is(err, store.ErrUserNotFound):
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.userRepository.UpdateProfile(ctx, session.UserID, update.Name, update.Email); err != nil {
		log.Err(err).Int64("id", session.UserID).Msg("profile update failed")
		return models.Session{}, fmt.Errorf("profile update failed: %w", err)
	}

	session.UserName = update.Name
	return session, nil
}

// ChangePassword replaces the password of the session's account. Rules are
// checked in order:
//   - ErrWrongCurrentPassword
//   - ErrPasswordsDoNotMatch
//   - ErrPasswordTooShort
//   - ErrPasswordTooLong
func (a *accountService) ChangePassword(ctx context.Context, session models.Session, change models.PasswordChange) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !verifyPassword(user.Password, change.Current) {
		log.Warn().Int64("id", session.UserID).Msg("wrong current password")
		return ErrWrongCurrentPassword
	}

	if err = a.validator.Validate(ctx, change); err != nil {
		return formError(err, ErrPasswordTooShort)
	}

	password, err := a.encodePassword(change.New)
	if err != nil {
		return fmt.Errorf("password encoding failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, session.UserID, password); err != nil {
		log.Err(err).Int64("id", session.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", session.UserID).Msg("password changed")
	return nil
}

// ListResearchers returns every account without passwords.
func (a *accountService) ListResearchers(ctx context.Context) ([]models.Researcher, error) {
	users, err := a.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	researchers := make([]models.Researcher, 0, len(users))
	for _, u := range users {
		researchers = append(researchers, u.Researcher())
	}
	return researchers, nil
}
