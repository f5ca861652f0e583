// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/medtrack/medtrack/internal/render"
)

// flashCookieName carries a one-shot status message across exactly one
// redirect. The value is "category|message", base64url-encoded so arbitrary
// message text survives cookie encoding rules.
const flashCookieName = "medtrack_flash"

// Flash categories, matching the CSS classes the templates emit.
const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashInfo    = "info"
)

// setFlash queues a flash message to be shown on the next rendered page.
func setFlash(w http.ResponseWriter, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// popFlash returns the pending flash message, if any, and clears it so it is
// shown exactly once.
func popFlash(w http.ResponseWriter, r *http.Request) *render.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	// clear regardless of whether the value decodes
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}

	return &render.Flash{Category: category, Message: message}
}
