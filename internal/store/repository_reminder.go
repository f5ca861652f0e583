// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/models"
)

// reminderRepository is the SQL-backed implementation of [ReminderRepository].
type reminderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReminderRepository constructs a [ReminderRepository] backed by the
// provided database connection and logger.
func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateReminder persists a new reminder record and returns it with the
// server-assigned ReminderID and CreatedAt. Ownership of the referenced
// medicine is verified at the service layer before this call.
func (r *reminderRepository) CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(reminder.TableName()).
		Columns("user_id", "medicine_id", "reminder_time", "frequency").
		Values(reminder.UserID, reminder.MedicineID, reminder.ReminderTime, reminder.Frequency).
		Suffix("RETURNING reminder_id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.CreateReminder").Msg("error building insert query")
		return models.Reminder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&reminder.ReminderID, &reminder.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.CreateReminder").
			Int64("user_id", reminder.UserID).
			Int64("medicine_id", reminder.MedicineID).
			Msg("failed to insert reminder")
		return models.Reminder{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reminder, nil
}

// ListRemindersByOwner returns every reminder owned by userID, each joined
// with the name of its referenced medicine for display.
func (r *reminderRepository) ListRemindersByOwner(ctx context.Context, userID int64) ([]models.ReminderView, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(
			"r.reminder_id", "r.user_id", "r.medicine_id",
			"r.reminder_time", "r.frequency", "r.created_at",
			"m.name",
		).
		From(models.Reminder{}.TableName() + " r").
		Join(models.Medicine{}.TableName() + " m ON m.medicine_id = r.medicine_id").
		Where(sq.Eq{"r.user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ListRemindersByOwner").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.ListRemindersByOwner").
			Int64("user_id", userID).
			Msg("failed to query reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var reminders []models.ReminderView
	for rows.Next() {
		var rv models.ReminderView
		if err := rows.Scan(&rv.ReminderID, &rv.UserID, &rv.MedicineID, &rv.ReminderTime, &rv.Frequency, &rv.CreatedAt, &rv.MedicineName); err != nil {
			log.Err(err).Str("func", "*reminderRepository.ListRemindersByOwner").Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		reminders = append(reminders, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return reminders, nil
}

// DeleteReminder removes the reminder identified by reminderID when it is
// owned by userID. Returns [ErrReminderNotFound] when no owned row matches;
// the caller decides whether that is an error or a silent no-op.
func (r *reminderRepository) DeleteReminder(ctx context.Context, reminderID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Reminder{}.TableName()).
		Where(sq.Eq{"reminder_id": reminderID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.DeleteReminder").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.DeleteReminder").
			Int64("reminder_id", reminderID).
			Msg("failed to delete reminder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrReminderNotFound
	}

	return nil
}
