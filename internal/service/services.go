// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/medtrack/medtrack/internal/config"
	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/store"
)

type Services struct {
	AuthService                AuthService
	MedicineService            MedicineService
	ReminderService            ReminderService
	AlternativeMedicineService AlternativeMedicineService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:                NewAuthService(storages.UserRepository, cfg.App, logger),
		MedicineService:            NewMedicineService(storages.MedicineRepository, logger),
		ReminderService:            NewReminderService(storages.ReminderRepository, storages.MedicineRepository, logger),
		AlternativeMedicineService: NewAlternativeMedicineService(storages.AlternativeMedicineRepository, logger),
	}
}
