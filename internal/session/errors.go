// SPDX-License-Identifier: Apache-2.0

package session

import "errors"

// ErrSessionNotFound is returned by [Store.Get] when no session exists for
// the supplied token. Callers should treat it as "not signed in" and redirect
// to the login flow.
var ErrSessionNotFound = errors.New("session not found")
