// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/medtrack/medtrack/internal/logger"
)

// alternativeMedicines lists the WHO reference table. The page is public.
// An optional ?condition= query parameter narrows the list to one condition.
func (h *Handler) alternativeMedicines(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	condition := r.URL.Query().Get("condition")

	alternatives, err := h.services.AlternativeMedicineService.ListAlternatives(ctx, condition)
	if err != nil {
		log.Err(err).Msg("error listing alternative medicines")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "alternative_medicines", "Alternative Medicines", alternatives)
}
