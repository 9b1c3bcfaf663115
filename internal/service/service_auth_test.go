package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/mock"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAuthSvc — хелпер для создания authService с моками
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller, storage string) (*authService, *mock.MockUserRepository, *clockwork.FakeClock) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.App{SecretKey: "test-secret", SessionDuration: time.Hour, PasswordStorage: storage}

	svc, err := NewAuthService(users, cfg, clock, logger.Nop())
	require.NoError(t, err)

	return svc.(*authService), users, clock
}

func validRegistration() models.Registration {
	return models.Registration{
		Name:     " Ada ",
		Email:    " ada@example.com ",
		Password: "secret1",
		Confirm:  "secret1",
	}
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_RegisterThenLogin(t *testing.T) {
	for _, storage := range []string{config.PasswordStoragePlain, config.PasswordStorageSHA256, config.PasswordStorageBcrypt} {
		t.Run(storage, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestAuthSvc(t, ctrl, storage)
			ctx := context.Background()

			var stored models.User
			gomock.InOrder(
				users.EXPECT().FindByEmail(ctx, "ada@example.com").Return(models.User{}, store.ErrUserNotFound),
				users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u models.User) (models.User, error) {
						u.UserID = 7
						stored = u
						return u, nil
					},
				),
				users.EXPECT().FindByEmail(ctx, "ada@example.com").DoAndReturn(
					func(context.Context, string) (models.User, error) { return stored, nil },
				),
			)

			user, err := svc.Register(ctx, validRegistration())
			require.NoError(t, err)
			assert.Equal(t, int64(7), user.UserID)
			assert.Equal(t, "Ada", user.Name)
			assert.Equal(t, models.RoleViewer, user.Role)

			session, err := svc.Login(ctx, models.Credentials{Email: "ada@example.com ", Password: "secret1"})
			require.NoError(t, err)
			assert.Equal(t, models.Session{UserID: 7, UserName: "Ada", Role: models.RoleViewer}, session)
		})
	}
}

func TestAuthService_Register_StoredForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStorageSHA256)
	ctx := context.Background()

	users.EXPECT().FindByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, utils.SHA256Hex("secret1"), u.Password)
			return u, nil
		},
	)

	reg := validRegistration()
	reg.Role = models.RoleAdmin
	user, err := svc.Register(ctx, reg)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestAuthService_Register_Rules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.Registration)
		wantErr error
	}{
		{name: "empty name", mutate: func(r *models.Registration) { r.Name = "  " }, wantErr: ErrAllFieldsRequired},
		{name: "empty confirm", mutate: func(r *models.Registration) { r.Confirm = "" }, wantErr: ErrAllFieldsRequired},
		{name: "mismatch", mutate: func(r *models.Registration) { r.Confirm = "secret2" }, wantErr: ErrPasswordsDoNotMatch},
		{name: "too short", mutate: func(r *models.Registration) { r.Password, r.Confirm = "abc", "abc" }, wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

			reg := validRegistration()
			tt.mutate(&reg)

			_, err := svc.Register(context.Background(), reg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_BcryptPasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStorageBcrypt)

	users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(models.User{}, store.ErrUserNotFound)

	reg := validRegistration()
	reg.Password = strings.Repeat("p", 73)
	reg.Confirm = reg.Password

	_, err := svc.Register(context.Background(), reg)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

	users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return(models.User{UserID: 1}, nil)

	_, err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

	users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), validRegistration())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestNewAuthService_UnsupportedStorage(t *testing.T) {
	_, err := NewAuthService(nil, config.App{PasswordStorage: "md5"}, clockwork.NewFakeClock(), logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedPasswordStorage)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_StoredForms(t *testing.T) {
	bcrypted, err := utils.BcryptHash("secret1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		stored string
	}{
		{name: "plain", stored: "secret1"},
		{name: "sha256", stored: utils.SHA256Hex("secret1")},
		{name: "bcrypt", stored: bcrypted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

			users.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").
				Return(models.User{UserID: 3, Name: "Ada", Password: tt.stored, Role: models.RoleResearcher}, nil)

			session, err := svc.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "secret1"})
			require.NoError(t, err)
			assert.Equal(t, int64(3), session.UserID)
			assert.Equal(t, models.RoleResearcher, session.Role)
		})
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Run("empty fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "  ", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = svc.Login(context.Background(), models.Credentials{Email: "ada@example.com"})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)
		users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)
		users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Password: "secret1"}, nil)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("database down", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)
		users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDatabaseUnavailable)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ada@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, store.ErrDatabaseUnavailable)
		assert.False(t, errors.Is(err, ErrInvalidCredentials))
	})
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestAuthService_SessionRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, clock := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)
	ctx := context.Background()

	session := models.Session{UserID: 9, UserName: "Ada", Role: models.RoleAdmin}
	token, err := svc.IssueSession(ctx, session)
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseSession(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, session, parsed)

	clock.Advance(2 * time.Hour)
	_, err = svc.ParseSession(ctx, token.String())
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_ParseSession_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

	_, err := svc.ParseSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)

	other, err := utils.GenerateSessionToken(models.Session{UserID: 1}, time.Hour, "other-secret", svc.clock)
	require.NoError(t, err)
	_, err = svc.ParseSession(context.Background(), other.String())
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAuthService_IssueSession_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl, config.PasswordStoragePlain)

	_, err := svc.IssueSession(context.Background(), models.Session{})
	assert.ErrorIs(t, err, ErrSessionCreationFailed)
}
