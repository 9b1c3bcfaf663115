package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func newMockDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	var classifier ErrorClassifier = NewPostgresErrorClassifier()
	if driver == config.DriverSQLite {
		classifier = NewSQLiteErrorClassifier()
	}

	return newDB(db, driver, classifier, logger.Nop()), mock, db
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, raw := newMockDB(t, config.DriverPostgres)
	return &userRepository{DB: db, logger: logger.Nop()}, mock, raw
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "password", "role"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: models.RoleViewer}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,password,role) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("Ada", "ada@example.com", "secret1", "viewer").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.User{Email: "dup@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UniqueViolationSQLite(t *testing.T) {
	db, mock, raw := newMockDB(t, config.DriverSQLite)
	defer raw.Close()
	repo := &userRepository{DB: db, logger: logger.Nop()}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,password,role) VALUES (?,?,?,?) RETURNING id")).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique})

	_, err := repo.Create(context.Background(), models.User{Email: "dup@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.User{Email: "x@example.com"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !strings.Contains(err.Error(), "db network error") {
		t.Errorf("expected cause in error, got %v", err)
	}
}

func TestCreateUser_ConnectionFailure(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.Create(context.Background(), models.User{Email: "x@example.com"})
	if !errors.Is(err, ErrDatabaseUnavailable) {
		t.Fatalf("expected ErrDatabaseUnavailable, got %v", err)
	}
}

func TestFindByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "Ada", "ada@example.com", "secret1", "admin")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role FROM users WHERE email = $1 LIMIT 1")).
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	found, err := repo.FindByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 1 || found.Name != "Ada" || found.Password != "secret1" {
		t.Errorf("unexpected user: %+v", found)
	}
	if found.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", found.Role)
	}
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, email, password, role FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindByEmail(context.Background(), "ada@example.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(3, "Bo", "bo@example.com", "pw", "viewer"))

	found, err := repo.FindByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "bo@example.com" {
		t.Errorf("expected bo@example.com, got %s", found.Email)
	}
}

func TestFindByID_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	// intentionally wrong shape → scan error
	mock.ExpectQuery("SELECT id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.FindByID(context.Background(), 1)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userRowColumns).
		AddRow(1, "Ada", "ada@example.com", "pw1", "admin").
		AddRow(2, "Bo", "bo@example.com", "pw2", "viewer")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role FROM users ORDER BY id")).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Name != "Bo" {
		t.Errorf("expected Bo second, got %s", users[1].Name)
	}
}

func TestListUsers_Empty(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM users ORDER BY id").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", users)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET name = $1, email = $2 WHERE id = $3")).
		WithArgs("Ada L.", "ada@new.example.com", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateProfile(context.Background(), 1, "Ada L.", "ada@new.example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateProfile_EmailTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET name").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.UpdateProfile(context.Background(), 1, "Ada", "taken@example.com")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateProfile_NoRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET name").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), 99, "Ghost", "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePassword_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET password = $1 WHERE id = $2")).
		WithArgs("new-secret", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdatePassword(context.Background(), 5, "new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithConn_AcquireError(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	db.Close()

	_, err := repo.FindByEmail(context.Background(), "ada@example.com")
	if !errors.Is(err, ErrAcquiringConnection) {
		t.Fatalf("expected ErrAcquiringConnection, got %v", err)
	}
}
