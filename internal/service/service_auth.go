package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/internal/validators"
	"github.com/MKhiriev/climate-dashboard/models"
	"github.com/jonboulle/clockwork"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the UserRepository, registers accounts and
// signs sessions as JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the registration form.
	validator validators.Validator

	// encodePassword turns a new password into its stored form according to
	// the configured password storage.
	encodePassword passwordEncoder

	// sessionSignKey is the HMAC secret used to sign and verify sessions.
	sessionSignKey string

	// sessionDuration controls how long a newly issued session remains valid.
	sessionDuration time.Duration

	// clock is the time source for issuing and validating sessions.
	clock clockwork.Clock

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// Returns ErrUnsupportedPasswordStorage when cfg.PasswordStorage is unknown.
func NewAuthService(userRepository store.UserRepository, cfg config.App, clock clockwork.Clock, logger *logger.Logger) (AuthService, error) {
	encoder, err := newPasswordEncoder(cfg.PasswordStorage)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository:  userRepository,
		validator:       validators.NewFormValidator(),
		encodePassword:  encoder,
		sessionSignKey:  cfg.SecretKey,
		sessionDuration: cfg.SessionDuration,
		clock:           clock,
		logger:          logger,
	}, nil
}

// Login authenticates an existing user by email and password.
//
// Returns the session of the user or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if no account has that email or the password
//     does not verify.
//   - A wrapped storage error if the lookup fails for another reason.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Warn().Str("email", email).Msg("login with empty fields")
		return models.Session{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !verifyPassword(user.Password, credentials.Password) {
		log.Warn().Int64("id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.NewSession(user), nil
}

// Register creates a new account. Rules are checked in order and the first
// violation is returned:
//   - ErrAllFieldsRequired
//   - ErrPasswordsDoNotMatch
//   - ErrPasswordTooShort
//   - store.ErrEmailAlreadyExists
//   - ErrPasswordTooLong (bcrypt storage only)
//
// An empty role defaults to viewer.
func (a *authService) Register(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	registration.Name = strings.TrimSpace(registration.Name)
	registration.Email = strings.TrimSpace(registration.Email)
	registration.Role = models.Role(strings.TrimSpace(string(registration.Role)))
	if registration.Role == "" {
		registration.Role = models.RoleViewer
	}

	if err := a.validator.Validate(ctx, registration); err != nil {
		log.Warn().Err(err).Str("email", registration.Email).Msg("registration rejected")
		return models.User{}, formError(err, ErrAllFieldsRequired)
	}

	_, err := a.userRepository.FindByEmail(ctx, registration.Email)
	switch {
	case err == nil:
		log.Warn().Str("email", registration.Email).Msg("email already registered")
		return models.User{}, store.ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", registration.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	password, err := a.encodePassword(registration.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("password encoding failed: %w", err)
	}

	user, err := a.userRepository.Create(ctx, models.User{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: password,
		Role:     registration.Role,
	})
	if err != nil {
		log.Err(err).Str("email", registration.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", user.UserID).Str("role", string(user.Role)).Msg("user registered")
	return user, nil
}

// IssueSession signs session for the session cookie.
func (a *authService) IssueSession(ctx context.Context, session models.Session) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(session, a.sessionDuration, a.sessionSignKey, a.clock)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, nil
}

// ParseSession verifies a session cookie value. Any failure (expired, bad
// signature, malformed) is reported as ErrInvalidSession.
func (a *authService) ParseSession(ctx context.Context, tokenString string) (models.Session, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, a.sessionSignKey, a.clock)
	if err != nil {
		return models.Session{}, ErrInvalidSession
	}

	session, err := token.Session()
	if err != nil || session.IsZero() {
		return models.Session{}, ErrInvalidSession
	}

	return session, nil
}

// formError maps a validators error onto the service error of the first
// violated rule. required is returned for an empty field.
func formError(err, required error) error {
	switch {
	case errors.Is(err, validators.ErrRequired):
		return required
	case errors.Is(err, validators.ErrMismatch):
		return ErrPasswordsDoNotMatch
	case errors.Is(err, validators.ErrTooShort):
		return ErrPasswordTooShort
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
