package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// pool and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new account and returns it with the generated id.
//
// A UNIQUE violation on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.WithConn(ctx, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error inserting user")
		return models.User{}, r.mapWriteError(err)
	}

	return user, nil
}

// FindByEmail returns the account registered under email, or
// [ErrUserNotFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "email", email)
}

// FindByID returns the account with the given id, or [ErrUserNotFound].
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "id", userID)
}

func (r *userRepository) findOne(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.builder, map[string]any{column: value})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.WithConn(ctx, func(conn *sql.Conn) error {
		return scanUser(conn.QueryRowContext(ctx, query, args...), &user)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Str("by", column).Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// List returns every account ordered by id.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := make([]models.User, 0)
	err = r.WithConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var user models.User
			if err := scanUser(rows, &user); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, user)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UpdateProfile overwrites name and email of the account.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, name, email string) error {
	query, args, err := buildUpdateUserProfileQuery(r.builder, userID, name, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.UpdateProfile", query, args)
}

// UpdatePassword overwrites the stored password representation.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, password string) error {
	query, args, err := buildUpdateUserPasswordQuery(r.builder, userID, password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*userRepository.UpdatePassword", query, args)
}

// execAffectingOne runs an UPDATE keyed by user id and reports
// [ErrUserNotFound] when it matched nothing.
func (r *userRepository) execAffectingOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	var affected int64
	err := r.WithConn(ctx, func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return r.mapWriteError(err)
	}

	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) mapWriteError(err error) error {
	switch r.classify(err) {
	case UniqueViolation:
		return ErrEmailAlreadyExists
	case ConnectionFailure:
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, user *models.User) error {
	var role string
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Password, &role); err != nil {
		return err
	}
	user.Role = models.Role(role)
	return nil
}
