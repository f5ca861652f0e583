// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/service"
	"github.com/medtrack/medtrack/internal/store"
)

// dashboard lists the caller's medicines.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	medicines, err := h.services.MedicineService.ListMedicines(ctx, sess.UserID)
	if err != nil {
		log.Err(err).Msg("error listing medicines")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "dashboard", "Dashboard", medicines)
}

func (h *Handler) addMedicineForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "add_medicine", "Add Medicine", nil)
}

func (h *Handler) addMedicine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was submitted")
		http.Error(w, "invalid form was submitted", http.StatusBadRequest)
		return
	}

	_, err := h.services.MedicineService.AddMedicine(
		ctx,
		sess.UserID,
		r.PostFormValue("name"),
		r.PostFormValue("dosage"),
		r.PostFormValue("expiry_date"),
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			setFlash(w, flashDanger, "All fields are required.")
			http.Redirect(w, r, "/add_medicine", http.StatusSeeOther)
			return
		}

		log.Err(err).Msg("error adding medicine")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setFlash(w, flashSuccess, "Medicine added successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// deleteMedicine deletes an owned medicine. A nonexistent id or an id owned
// by another user is a silent no-op: control returns to the dashboard with no
// error surfaced.
func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	medicineID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	if err := h.services.MedicineService.DeleteMedicine(ctx, sess.UserID, medicineID); err != nil {
		if !errors.Is(err, store.ErrMedicineNotFound) {
			log.Err(err).Int64("medicine_id", medicineID).Msg("error deleting medicine")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		// missing or foreign id: fall through without a flash
	} else {
		setFlash(w, flashSuccess, "Medicine deleted successfully!")
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
