// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/medtrack/medtrack/models"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register validates the supplied registration data and creates a new
	// account with a bcrypt-hashed password. Failures are reported through
	// the sentinel errors in this package, in the order: duplicate email,
	// duplicate username, duplicate phone, malformed phone, weak password.
	Register(ctx context.Context, req RegisterRequest) (models.User, error)

	// Login verifies email and password. Unknown email and wrong password
	// both yield ErrInvalidCredentials; callers must not be able to tell
	// the two cases apart.
	Login(ctx context.Context, email, password string) (models.User, error)
}

// MedicineService exposes owner-scoped CRUD over medicines.
type MedicineService interface {
	ListMedicines(ctx context.Context, userID int64) ([]models.Medicine, error)
	AddMedicine(ctx context.Context, userID int64, name, dosage, expiryDate string) (models.Medicine, error)

	// DeleteMedicine deletes the medicine and, in the same transaction, all
	// reminders referencing it. A missing id or an id owned by another user
	// returns store.ErrMedicineNotFound.
	DeleteMedicine(ctx context.Context, userID, medicineID int64) error
}

// ReminderService exposes owner-scoped CRUD over reminders.
type ReminderService interface {
	ListReminders(ctx context.Context, userID int64) ([]models.ReminderView, error)

	// AddReminder creates a reminder referencing medicineID. The referenced
	// medicine must exist and belong to userID; otherwise
	// ErrMedicineNotOwned is returned.
	AddReminder(ctx context.Context, userID, medicineID int64, reminderTime, frequency string) (models.Reminder, error)

	// DeleteReminder mirrors DeleteMedicine's ownership semantics, returning
	// store.ErrReminderNotFound for a missing or foreign id.
	DeleteReminder(ctx context.Context, userID, reminderID int64) error
}

// AlternativeMedicineService exposes the read-only WHO reference table.
type AlternativeMedicineService interface {
	// ListAlternatives returns the reference rows, optionally filtered by
	// condition name. An empty condition returns everything.
	ListAlternatives(ctx context.Context, condition string) ([]models.AlternativeMedicine, error)
}

// RegisterRequest carries the raw registration form fields into
// [AuthService.Register]. Password is plaintext here and is hashed before it
// ever reaches the persistence layer.
type RegisterRequest struct {
	Username string
	Email    string
	Phone    string
	Password string
}
