// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Medicine is a single tracked medicine owned by a user.
type Medicine struct {
	MedicineID int64  `json:"medicine_id"`
	UserID     int64  `json:"-"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage"`

	// ExpiryDate is kept as free text exactly as submitted by the owner.
	ExpiryDate string `json:"expiry_date"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Medicine model.
func (m Medicine) TableName() string {
	return "medicines"
}
