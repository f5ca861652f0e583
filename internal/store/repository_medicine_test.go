// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/medtrack/medtrack/models"
)

func newTestMedicineRepo(t *testing.T) (*medicineRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	testDB, mock, db := newTestDB(t)
	repo := &medicineRepository{
		db:     testDB,
		logger: testDB.logger,
	}
	return repo, mock, db
}

func TestCreateMedicine_Success(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()
	medicine := models.Medicine{
		UserID:     1,
		Name:       "Paracetamol",
		Dosage:     "500mg",
		ExpiryDate: "2027-01-31",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"medicine_id", "created_at"}).
		AddRow(11, now)

	mock.ExpectQuery("INSERT INTO medicines").
		WithArgs(medicine.UserID, medicine.Name, medicine.Dosage, medicine.ExpiryDate).
		WillReturnRows(rows)

	created, err := repo.CreateMedicine(ctx, medicine)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MedicineID != 11 {
		t.Errorf("expected MedicineID=11, got %d", created.MedicineID)
	}
	if created.Name != medicine.Name {
		t.Errorf("expected name %s, got %s", medicine.Name, created.Name)
	}
}

func TestListMedicinesByOwner_Success(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"medicine_id", "user_id", "name", "dosage", "expiry_date", "created_at"}).
		AddRow(1, 7, "Paracetamol", "500mg", "2027-01-31", now).
		AddRow(2, 7, "Cetirizine", "10mg", "2026-11-30", now)

	mock.ExpectQuery("SELECT medicine_id, user_id, name, dosage, expiry_date, created_at FROM medicines").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	medicines, err := repo.ListMedicinesByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(medicines) != 2 {
		t.Fatalf("expected 2 medicines, got %d", len(medicines))
	}
	if medicines[1].Name != "Cetirizine" {
		t.Errorf("expected second medicine Cetirizine, got %s", medicines[1].Name)
	}
}

func TestListMedicinesByOwner_Empty(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"medicine_id", "user_id", "name", "dosage", "expiry_date", "created_at"})

	mock.ExpectQuery("SELECT medicine_id, user_id, name, dosage, expiry_date, created_at FROM medicines").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	medicines, err := repo.ListMedicinesByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(medicines) != 0 {
		t.Errorf("expected no medicines, got %d", len(medicines))
	}
}

func TestGetMedicine_Success(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"medicine_id", "user_id", "name", "dosage", "expiry_date", "created_at"}).
		AddRow(3, 7, "Metformin", "850mg", "2026-12-01", now)

	mock.ExpectQuery("SELECT medicine_id, user_id, name, dosage, expiry_date, created_at FROM medicines").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(rows)

	m, err := repo.GetMedicine(ctx, 3, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Metformin" {
		t.Errorf("expected Metformin, got %s", m.Name)
	}
}

func TestGetMedicine_WrongOwner(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT medicine_id, user_id, name, dosage, expiry_date, created_at FROM medicines").
		WithArgs(int64(3), int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMedicine(ctx, 3, 99)
	if !errors.Is(err, ErrMedicineNotFound) {
		t.Fatalf("expected ErrMedicineNotFound, got %v", err)
	}
}

func TestDeleteMedicine_CascadesReminders(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reminders").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM medicines").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteMedicine(ctx, 3, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMedicine_NotOwnedRollsBack(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reminders").
		WithArgs(int64(3), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM medicines").
		WithArgs(int64(3), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteMedicine(ctx, 3, 99)
	if !errors.Is(err, ErrMedicineNotFound) {
		t.Fatalf("expected ErrMedicineNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMedicine_ReminderDeleteFails(t *testing.T) {
	repo, mock, db := newTestMedicineRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM reminders").
		WithArgs(int64(3), int64(7)).
		WillReturnError(errors.New("disk error"))
	mock.ExpectRollback()

	err := repo.DeleteMedicine(ctx, 3, 7)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
