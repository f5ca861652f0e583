// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/render"
)

// renderPage assembles the page envelope (title, signed-in username, pending
// flash message) and hands it to the presentation adapter.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	log := logger.FromRequest(r)

	page := render.Page{
		Title: title,
		Flash: popFlash(w, r),
		Data:  data,
	}
	if sess, ok := sessionFromContext(r.Context()); ok {
		page.Username = sess.Username
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, page); err != nil {
		log.Err(err).Str("view", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// home renders the landing page.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index", "Home", nil)
}
