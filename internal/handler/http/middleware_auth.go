// SPDX-License-Identifier: Apache-2.0

// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the server-rendered web UI. Authentication, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/session"
)

// auth is an HTTP middleware that enforces session-based authentication.
//
// It reads the session cookie, resolves the opaque token through the session
// store, and on success stores the resolved [models.Session] in the
// request context under sessionCtxKey before delegating to the next handler.
//
// A missing cookie or an unknown token is not an error: the caller is
// redirected to the login flow, matching the behaviour of every protected
// page. Store failures other than session.ErrSessionNotFound are surfaced as
// HTTP 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := r.Context()
		sess, err := h.sessions.Get(ctx, cookie.Value)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				log.Debug().Msg("stale session cookie, redirecting to login")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			log.Err(err).Msg("error resolving session")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		// Store the resolved session in the context so that downstream
		// handlers can retrieve the caller's identity without another lookup.
		ctx = context.WithValue(ctx, sessionCtxKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
