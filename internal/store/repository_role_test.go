package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/jackc/pgerrcode"
)

func newTestRoleRepo(t *testing.T) (*roleRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &roleRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestFindOrCreateRole_Created(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"role_id", "name", "description"}).
		AddRow(1, "user", "default role")

	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("user", "default role").
		WillReturnRows(rows)

	role, err := repo.FindOrCreateRole(ctx, "user", "default role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.RoleID != 1 {
		t.Errorf("expected RoleID=1, got %d", role.RoleID)
	}
	if role.Name != "user" {
		t.Errorf("expected name user, got %s", role.Name)
	}
}

func TestFindOrCreateRole_ExistingKeepsDescription(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	// the upsert returns the stored row: the original description survives
	rows := sqlmock.
		NewRows([]string{"role_id", "name", "description"}).
		AddRow(7, "admin", "original description")

	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("admin", "new description").
		WillReturnRows(rows)

	role, err := repo.FindOrCreateRole(ctx, "admin", "new description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.Description != "original description" {
		t.Errorf("expected stored description, got %s", role.Description)
	}
}

func TestFindOrCreateRole_StoreUnavailable(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO roles").
		WithArgs("user", "default role").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindOrCreateRole(ctx, "user", "default role")
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestAssignRole_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AssignRole(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssignRole_AlreadyAssignedIsNoop(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	// ON CONFLICT DO NOTHING: zero rows affected, still no error
	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AssignRole(ctx, 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAssignRole_ExecError(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs(int64(1), int64(2)).
		WillReturnError(errors.New("db failure"))

	err := repo.AssignRole(ctx, 1, 2)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetUserRoles_Success(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"name"}).
		AddRow("admin").
		AddRow("user")

	mock.ExpectQuery("SELECT r.name").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	roles, err := repo.GetUserRoles(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(roles))
	}
	if roles[0] != "admin" || roles[1] != "user" {
		t.Errorf("expected [admin user], got %v", roles)
	}
}

func TestGetUserRoles_NoRoles(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT r.name").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	roles, err := repo.GetUserRoles(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roles == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(roles) != 0 {
		t.Errorf("expected no roles, got %v", roles)
	}
}

func TestGetUserRoles_StoreUnavailable(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT r.name").
		WithArgs(int64(1)).
		WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.GetUserRoles(ctx, 1)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestGetUserRoles_ScanError(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"name"}).
		AddRow(nil) // NULL into string → scan error

	mock.ExpectQuery("SELECT r.name").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	_, err := repo.GetUserRoles(ctx, 1)
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}
