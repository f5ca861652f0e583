// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// User represents a registered account used for authentication and as the
// owner of medicines and reminders.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique display name chosen at registration.
	Username string `json:"username"`

	// Email is the unique address the user authenticates with.
	Email string `json:"email"`

	// Phone is the unique contact number, exactly 10 decimal digits.
	Phone string `json:"phone"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plaintext password is never persisted and never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
