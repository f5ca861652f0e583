// SPDX-License-Identifier: Apache-2.0

package models

// AlternativeMedicine is one row of the WHO-style reference table mapping a
// condition and its primary medicine to a known alternative. The table is
// seeded once at startup and read-only afterwards.
type AlternativeMedicine struct {
	AlternativeID   int64  `json:"alternative_id"`
	Condition       string `json:"condition"`
	MedicineName    string `json:"medicine_name"`
	AlternativeName string `json:"alternative_name"`
}

// TableName returns the name of the database table
// associated with the AlternativeMedicine model.
func (a AlternativeMedicine) TableName() string {
	return "alternative_medicines"
}
