// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/models"
)

// reminderService is the concrete implementation of ReminderService.
// It consults the medicine repository before creating a reminder so that a
// reminder can only ever reference a medicine its creator owns.
type reminderService struct {
	reminderRepository store.ReminderRepository
	medicineRepository store.MedicineRepository
	logger             *logger.Logger
}

// NewReminderService constructs a ReminderService over the given repositories.
func NewReminderService(reminderRepository store.ReminderRepository, medicineRepository store.MedicineRepository, logger *logger.Logger) ReminderService {
	return &reminderService{
		reminderRepository: reminderRepository,
		medicineRepository: medicineRepository,
		logger:             logger,
	}
}

// ListReminders returns all reminders owned by userID, each carrying its
// medicine name for display.
func (r *reminderService) ListReminders(ctx context.Context, userID int64) ([]models.ReminderView, error) {
	reminders, err := r.reminderRepository.ListRemindersByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders failed: %w", err)
	}

	return reminders, nil
}

// AddReminder creates a reminder owned by userID referencing medicineID.
// The referenced medicine must exist and belong to userID; otherwise
// ErrMedicineNotOwned is returned and nothing is persisted.
func (r *reminderService) AddReminder(ctx context.Context, userID, medicineID int64, reminderTime, frequency string) (models.Reminder, error) {
	log := logger.FromContext(ctx)

	if reminderTime == "" || frequency == "" {
		log.Error().Int64("user_id", userID).Msg("invalid reminder data provided")
		return models.Reminder{}, ErrInvalidDataProvided
	}

	if _, err := r.medicineRepository.GetMedicine(ctx, medicineID, userID); err != nil {
		if errors.Is(err, store.ErrMedicineNotFound) {
			log.Warn().
				Int64("user_id", userID).
				Int64("medicine_id", medicineID).
				Msg("reminder references a medicine the user does not own")
			return models.Reminder{}, ErrMedicineNotOwned
		}

		return models.Reminder{}, fmt.Errorf("medicine ownership check failed: %w", err)
	}

	created, err := r.reminderRepository.CreateReminder(ctx, models.Reminder{
		UserID:       userID,
		MedicineID:   medicineID,
		ReminderTime: reminderTime,
		Frequency:    frequency,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("reminder creation ended with error")
		return models.Reminder{}, fmt.Errorf("reminder creation ended with error: %w", err)
	}

	return created, nil
}

// DeleteReminder deletes the reminder if it is owned by userID.
// store.ErrReminderNotFound propagates for a missing or foreign id; the
// handler treats it as a silent no-op.
func (r *reminderService) DeleteReminder(ctx context.Context, userID, reminderID int64) error {
	if err := r.reminderRepository.DeleteReminder(ctx, reminderID, userID); err != nil {
		return fmt.Errorf("reminder deletion ended with error: %w", err)
	}

	return nil
}
