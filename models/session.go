// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Session binds an opaque token to a signed-in user identity.
// A session lives until logout or until the backing store is reset;
// there is no expiry.
type Session struct {
	// Token is the opaque identifier handed to the client in a cookie.
	Token string `json:"-"`

	UserID   int64  `json:"-"`
	Username string `json:"username"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
