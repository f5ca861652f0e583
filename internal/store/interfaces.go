// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/medtrack/medtrack/models"
)

// UserRepository is the data-access contract for user accounts.
// Lookups that match no row return [ErrNoUserWasFound]; creation against an
// existing unique field returns [ErrUserAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (models.User, error)
}

// MedicineRepository is the data-access contract for owned medicines.
// All reads and deletes are scoped to the owning user id.
type MedicineRepository interface {
	CreateMedicine(ctx context.Context, medicine models.Medicine) (models.Medicine, error)
	ListMedicinesByOwner(ctx context.Context, userID int64) ([]models.Medicine, error)
	GetMedicine(ctx context.Context, medicineID, userID int64) (models.Medicine, error)

	// DeleteMedicine removes the medicine identified by medicineID only if it
	// is owned by userID, together with every reminder referencing it.
	// Returns ErrMedicineNotFound when no owned row matches.
	DeleteMedicine(ctx context.Context, medicineID, userID int64) error
}

// ReminderRepository is the data-access contract for owned reminders.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder models.Reminder) (models.Reminder, error)
	ListRemindersByOwner(ctx context.Context, userID int64) ([]models.ReminderView, error)

	// DeleteReminder removes the reminder identified by reminderID only if it
	// is owned by userID. Returns ErrReminderNotFound when no owned row matches.
	DeleteReminder(ctx context.Context, reminderID, userID int64) error
}

// AlternativeMedicineRepository is the data-access contract for the
// read-only WHO alternative medicine reference table.
type AlternativeMedicineRepository interface {
	ListAlternativeMedicines(ctx context.Context, condition string) ([]models.AlternativeMedicine, error)

	// Seed inserts the fixed reference dataset in one transaction if the
	// table is empty. It is a no-op once any row exists.
	Seed(ctx context.Context) error
}
