// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Reminder is an intake reminder owned by a user and referencing one of the
// owner's medicines. Reminders are stored only; nothing in the application
// fires them.
type Reminder struct {
	ReminderID int64 `json:"reminder_id"`
	UserID     int64 `json:"-"`
	MedicineID int64 `json:"medicine_id"`

	// ReminderTime and Frequency are free-text values ("08:00", "daily").
	ReminderTime string `json:"reminder_time"`
	Frequency    string `json:"frequency"`

	CreatedAt time.Time `json:"created_at"`
}

// ReminderView is a Reminder joined with the name of its medicine,
// produced by the list query for display purposes.
type ReminderView struct {
	Reminder
	MedicineName string `json:"medicine_name"`
}

// TableName returns the name of the database table
// associated with the Reminder model.
func (r Reminder) TableName() string {
	return "reminders"
}
