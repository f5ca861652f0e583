// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/medtrack/medtrack/internal/session"
)

func newTestSessionStore(t *testing.T) (*sessionStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	testDB, mock, db := newTestDB(t)
	s := &sessionStore{
		db:     testDB,
		logger: testDB.logger,
	}
	return s, mock, db
}

func TestSessionStore_Create(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), int64(7), "john").
		WillReturnResult(sqlmock.NewResult(0, 1))

	token, err := s.Create(ctx, 7, "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestSessionStore_Get(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"token", "user_id", "username", "created_at"}).
		AddRow("some-token", 7, "john", now)

	mock.ExpectQuery("SELECT token, user_id, username, created_at FROM sessions").
		WithArgs("some-token").
		WillReturnRows(rows)

	found, err := s.Get(ctx, "some-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.Username != "john" {
		t.Errorf("expected username john, got %s", found.Username)
	}
}

func TestSessionStore_GetUnknownToken(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token, user_id, username, created_at FROM sessions").
		WithArgs("never-issued").
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(ctx, "never-issued")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("some-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.Delete(ctx, "some-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionStore_DeleteUnknownTokenIsNotAnError(t *testing.T) {
	s, mock, db := newTestSessionStore(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("never-issued").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.Delete(ctx, "never-issued"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
