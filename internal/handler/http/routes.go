// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/alternative_medicines", h.alternativeMedicines)
	})

	// routes that require a signed-in session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/dashboard", h.dashboard)
		r.Get("/add_medicine", h.addMedicineForm)
		r.Post("/add_medicine", h.addMedicine)
		r.Get("/delete_medicine/{id}", h.deleteMedicine)
		r.Get("/reminder", h.reminders)
		r.Post("/reminder", h.addReminder)
		r.Get("/delete_reminder/{id}", h.deleteReminder)
	})

	return router
}
