// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/models"
)

// medicineRepository is the SQL-backed implementation of [MedicineRepository].
// Every query is scoped by the owning user id, so one user can never observe
// or mutate another user's rows through this repository.
type medicineRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMedicineRepository constructs a [MedicineRepository] backed by the
// provided database connection and logger.
func NewMedicineRepository(db *DB, logger *logger.Logger) MedicineRepository {
	logger.Debug().Msg("creating medicine repository")
	return &medicineRepository{
		db:     db,
		logger: logger,
	}
}

// CreateMedicine persists a new medicine record and returns it with the
// server-assigned MedicineID and CreatedAt.
func (r *medicineRepository) CreateMedicine(ctx context.Context, medicine models.Medicine) (models.Medicine, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(medicine.TableName()).
		Columns("user_id", "name", "dosage", "expiry_date").
		Values(medicine.UserID, medicine.Name, medicine.Dosage, medicine.ExpiryDate).
		Suffix("RETURNING medicine_id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*medicineRepository.CreateMedicine").Msg("error building insert query")
		return models.Medicine{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&medicine.MedicineID, &medicine.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*medicineRepository.CreateMedicine").
			Int64("user_id", medicine.UserID).
			Msg("failed to insert medicine")
		return models.Medicine{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return medicine, nil
}

// ListMedicinesByOwner returns every medicine owned by userID.
// An empty result is not an error.
func (r *medicineRepository) ListMedicinesByOwner(ctx context.Context, userID int64) ([]models.Medicine, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("medicine_id", "user_id", "name", "dosage", "expiry_date", "created_at").
		From(models.Medicine{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*medicineRepository.ListMedicinesByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*medicineRepository.ListMedicinesByOwner").
			Int64("user_id", userID).
			Msg("failed to query medicines")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var medicines []models.Medicine
	for rows.Next() {
		var m models.Medicine
		if err := rows.Scan(&m.MedicineID, &m.UserID, &m.Name, &m.Dosage, &m.ExpiryDate, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "*medicineRepository.ListMedicinesByOwner").Msg("failed to scan medicine row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		medicines = append(medicines, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return medicines, nil
}

// GetMedicine returns the medicine identified by medicineID if it is owned
// by userID, or [ErrMedicineNotFound] otherwise.
func (r *medicineRepository) GetMedicine(ctx context.Context, medicineID, userID int64) (models.Medicine, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("medicine_id", "user_id", "name", "dosage", "expiry_date", "created_at").
		From(models.Medicine{}.TableName()).
		Where(sq.Eq{"medicine_id": medicineID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*medicineRepository.GetMedicine").Msg("error building select query")
		return models.Medicine{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var m models.Medicine
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&m.MedicineID, &m.UserID, &m.Name, &m.Dosage, &m.ExpiryDate, &m.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Medicine{}, ErrMedicineNotFound
		}

		log.Err(err).Str("func", "*medicineRepository.GetMedicine").Msg("failed to scan medicine row")
		return models.Medicine{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

// DeleteMedicine removes the medicine identified by medicineID when it is
// owned by userID. Dependent reminders are deleted in the same transaction so
// that no reminder is ever left referencing a missing medicine.
//
// Returns [ErrMedicineNotFound] when no owned row matches; the caller decides
// whether that is an error or a silent no-op.
func (r *medicineRepository) DeleteMedicine(ctx context.Context, medicineID, userID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*medicineRepository.DeleteMedicine").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	reminderQuery, reminderArgs, err := r.db.builder.
		Delete(models.Reminder{}.TableName()).
		Where(sq.Eq{"medicine_id": medicineID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, reminderQuery, reminderArgs...); err != nil {
		log.Err(err).
			Str("func", "*medicineRepository.DeleteMedicine").
			Int64("medicine_id", medicineID).
			Msg("failed to delete dependent reminders")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	medicineQuery, medicineArgs, err := r.db.builder.
		Delete(models.Medicine{}.TableName()).
		Where(sq.Eq{"medicine_id": medicineID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, medicineQuery, medicineArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*medicineRepository.DeleteMedicine").
			Int64("medicine_id", medicineID).
			Msg("failed to delete medicine")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMedicineNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*medicineRepository.DeleteMedicine").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
