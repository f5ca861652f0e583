// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/session"
)

// Storages bundles every repository backed by the shared database connection.
type Storages struct {
	UserRepository                UserRepository
	MedicineRepository            MedicineRepository
	ReminderRepository            ReminderRepository
	AlternativeMedicineRepository AlternativeMedicineRepository
	SessionStore                  session.Store
	DB                            *DB
}

// NewStorages connects to the configured database, applies pending
// migrations, seeds the alternative-medicine reference table, and wires all
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	storages := &Storages{
		UserRepository:                NewUserRepository(db, log),
		MedicineRepository:            NewMedicineRepository(db, log),
		ReminderRepository:            NewReminderRepository(db, log),
		AlternativeMedicineRepository: NewAlternativeMedicineRepository(db, log),
		SessionStore:                  NewSessionStore(db, log),
		DB:                            db,
	}

	if err := storages.AlternativeMedicineRepository.Seed(ctx); err != nil {
		return nil, fmt.Errorf("error seeding reference data: %w", err)
	}

	return storages, nil
}
