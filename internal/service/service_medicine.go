// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/store"
	"github.com/medtrack/medtrack/models"
)

// medicineService is the concrete implementation of MedicineService.
// Ownership scoping is enforced here and in the repository queries, never in
// the HTTP layer.
type medicineService struct {
	medicineRepository store.MedicineRepository
	logger             *logger.Logger
}

// NewMedicineService constructs a MedicineService over the given repository.
func NewMedicineService(medicineRepository store.MedicineRepository, logger *logger.Logger) MedicineService {
	return &medicineService{
		medicineRepository: medicineRepository,
		logger:             logger,
	}
}

// ListMedicines returns all medicines owned by userID. Order is not
// semantically significant.
func (m *medicineService) ListMedicines(ctx context.Context, userID int64) ([]models.Medicine, error) {
	medicines, err := m.medicineRepository.ListMedicinesByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing medicines failed: %w", err)
	}

	return medicines, nil
}

// AddMedicine creates a medicine owned by userID. Beyond non-empty fields
// (enforced by the form) there is no validation; the expiry date is stored
// as submitted.
func (m *medicineService) AddMedicine(ctx context.Context, userID int64, name, dosage, expiryDate string) (models.Medicine, error) {
	log := logger.FromContext(ctx)

	if name == "" || dosage == "" || expiryDate == "" {
		log.Error().Int64("user_id", userID).Msg("invalid medicine data provided")
		return models.Medicine{}, ErrInvalidDataProvided
	}

	created, err := m.medicineRepository.CreateMedicine(ctx, models.Medicine{
		UserID:     userID,
		Name:       name,
		Dosage:     dosage,
		ExpiryDate: expiryDate,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("medicine creation ended with error")
		return models.Medicine{}, fmt.Errorf("medicine creation ended with error: %w", err)
	}

	return created, nil
}

// DeleteMedicine deletes the medicine and its dependent reminders if it is
// owned by userID. store.ErrMedicineNotFound propagates for a missing or
// foreign id; the handler treats it as a silent no-op.
func (m *medicineService) DeleteMedicine(ctx context.Context, userID, medicineID int64) error {
	if err := m.medicineRepository.DeleteMedicine(ctx, medicineID, userID); err != nil {
		return fmt.Errorf("medicine deletion ended with error: %w", err)
	}

	return nil
}
