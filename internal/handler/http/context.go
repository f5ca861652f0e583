// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/medtrack/medtrack/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// sessionCtxKey is the key under which the auth middleware stores the
// resolved [models.Session] for downstream handlers.
var sessionCtxKey = contextKey("session")

// sessionFromContext retrieves the resolved session from the context.
//
// Returns the session and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func sessionFromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey).(models.Session)
	return sess, ok
}
