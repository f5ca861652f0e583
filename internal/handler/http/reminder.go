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
	"github.com/medtrack/medtrack/models"
)

// reminderPage is the payload of the reminders view: the caller's medicines
// for the create form's select box, and the existing reminders.
type reminderPage struct {
	Medicines []models.Medicine
	Reminders []models.ReminderView
}

// reminders lists the caller's reminders together with the medicines
// available for a new reminder.
func (h *Handler) reminders(w http.ResponseWriter, r *http.Request) {
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

	reminders, err := h.services.ReminderService.ListReminders(ctx, sess.UserID)
	if err != nil {
		log.Err(err).Msg("error listing reminders")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "reminder", "Reminders", reminderPage{
		Medicines: medicines,
		Reminders: reminders,
	})
}

func (h *Handler) addReminder(w http.ResponseWriter, r *http.Request) {
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

	medicineID, err := strconv.ParseInt(r.PostFormValue("medicine_id"), 10, 64)
	if err != nil {
		setFlash(w, flashDanger, "Please choose a medicine.")
		http.Redirect(w, r, "/reminder", http.StatusSeeOther)
		return
	}

	_, err = h.services.ReminderService.AddReminder(
		ctx,
		sess.UserID,
		medicineID,
		r.PostFormValue("reminder_time"),
		r.PostFormValue("frequency"),
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMedicineNotOwned):
			setFlash(w, flashDanger, "Please choose one of your own medicines.")
		case errors.Is(err, service.ErrInvalidDataProvided):
			setFlash(w, flashDanger, "All fields are required.")
		default:
			log.Err(err).Msg("error adding reminder")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/reminder", http.StatusSeeOther)
		return
	}

	setFlash(w, flashSuccess, "Reminder added successfully!")
	http.Redirect(w, r, "/reminder", http.StatusSeeOther)
}

// deleteReminder deletes an owned reminder with the same silent-no-op
// semantics as deleteMedicine.
func (h *Handler) deleteReminder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFromContext(ctx)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	reminderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/reminder", http.StatusSeeOther)
		return
	}

	if err := h.services.ReminderService.DeleteReminder(ctx, sess.UserID, reminderID); err != nil {
		if !errors.Is(err, store.ErrReminderNotFound) {
			log.Err(err).Int64("reminder_id", reminderID).Msg("error deleting reminder")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	} else {
		setFlash(w, flashSuccess, "Reminder deleted successfully!")
	}

	http.Redirect(w, r, "/reminder", http.StatusSeeOther)
}
