// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"github.com/medtrack/medtrack/internal/logger"
	"github.com/medtrack/medtrack/internal/service"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "register", "Register", nil)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was submitted")
		http.Error(w, "invalid form was submitted", http.StatusBadRequest)
		return
	}

	req := service.RegisterRequest{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Phone:    r.PostFormValue("phone"),
		Password: r.PostFormValue("password"),
	}

	_, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			setFlash(w, flashDanger, "Email already registered.")
		case errors.Is(err, service.ErrUsernameTaken):
			setFlash(w, flashDanger, "Username already taken.")
		case errors.Is(err, service.ErrPhoneTaken):
			setFlash(w, flashDanger, "Phone number already registered.")
		case errors.Is(err, service.ErrInvalidPhone):
			setFlash(w, flashDanger, "Phone number must be exactly 10 digits.")
		case errors.Is(err, service.ErrInvalidPassword):
			setFlash(w, flashDanger, "Password must be at least 8 characters and include letters, numbers & symbols.")
		case errors.Is(err, service.ErrInvalidDataProvided):
			setFlash(w, flashDanger, "All fields are required.")
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	setFlash(w, flashSuccess, "Registration successful! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "login", "Login", nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was submitted")
		http.Error(w, "invalid form was submitted", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidDataProvided):
			// unknown email and wrong password surface identically
			setFlash(w, flashDanger, "Invalid email or password.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.sessions.Create(ctx, user.UserID, user.Username)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	setFlash(w, flashSuccess, "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// logout destroys the current session unconditionally. Visiting /logout
// without a session is a harmless no-op redirect.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(h.sessionCookieName); err == nil {
		if err := h.sessions.Delete(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("session deletion failed")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	setFlash(w, flashInfo, "Logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
