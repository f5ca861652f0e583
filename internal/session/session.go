// SPDX-License-Identifier: Apache-2.0

// Package session provides the association between opaque session tokens and
// signed-in user identities.
//
// The application never keeps ambient session state: every handler receives a
// [Store] and resolves the caller explicitly. Two implementations exist: an
// in-memory map used in tests and as a no-database fallback, and a SQL-backed
// store (internal/store) that survives restarts.
package session

import (
	"context"

	"github.com/medtrack/medtrack/models"
)

// Store is the keyed mapping from session token to user identity.
//
// A session has no expiry: it lives until Delete is called for its token or
// the backing store is reset.
type Store interface {
	// Create establishes a new session for the given user identity and
	// returns the opaque token to hand to the client.
	Create(ctx context.Context, userID int64, username string) (string, error)

	// Get resolves token to its session. Returns ErrSessionNotFound when the
	// token is unknown.
	Get(ctx context.Context, token string) (models.Session, error)

	// Delete destroys the session for token. Deleting an unknown token is
	// not an error; logout always succeeds.
	Delete(ctx context.Context, token string) error
}
