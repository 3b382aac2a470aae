// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"errors"
	"net/http"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/service"
	"github.com/avelichko/notekeeper/internal/utils"
	"github.com/avelichko/notekeeper/models"
)

// root sends the visitor to their own page when a session is present and to
// the registration page otherwise.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if principal, ok := utils.GetPrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/users/"+principal, http.StatusFound)
		return
	}
	http.Redirect(w, r, "/register", http.StatusFound)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfLoggedIn(w, r) {
		return
	}

	h.render(w, r, http.StatusOK, "register.html", pageData{Title: "Register"})
}

func (h *Handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.redirectIfLoggedIn(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("cannot parse form")
		http.Error(w, "cannot parse form", http.StatusBadRequest)
		return
	}

	form := models.RegisterForm{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, form)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			log.Debug().Msg("registration rejected")
			h.render(w, r, http.StatusUnprocessableEntity, "register.html", pageData{
				Title:  "Register",
				Form:   registerFormValues(form),
				Errors: vErr.Fields,
			})
			return
		}
		log.Err(err).Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), statusFromError(err))
		return
	}

	h.startSession(w, r, registeredUser.Username)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfLoggedIn(w, r) {
		return
	}

	h.render(w, r, http.StatusOK, "login.html", pageData{Title: "Log in"})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.redirectIfLoggedIn(w, r) {
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("cannot parse form")
		http.Error(w, "cannot parse form", http.StatusBadRequest)
		return
	}

	form := models.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	// Malformed credentials get the same generic answer as wrong ones, so
	// the response never hints at which part failed.
	if fields := form.Validate(); len(fields) > 0 {
		log.Debug().Msg("authentication failed")
		h.renderLoginFailed(w, r, form)
		return
	}

	foundUser, err := h.services.AuthService.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Debug().Msg("authentication failed")
			h.renderLoginFailed(w, r, form)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, foundUser.Username)
}

// logout clears the session cookie. The session token itself stays valid
// until its expiry; dropping the cookie is the only revocation a stateless
// session supports.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// startSession issues a session token for username, sets the cookie, and
// redirects to the user's page.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, username string) {
	log := logger.FromRequest(r)

	token, err := h.services.SessionService.Issue(username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token)
	http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
}

// redirectIfLoggedIn sends an already authenticated visitor to their own
// page. Reports whether the request was handled.
func (h *Handler) redirectIfLoggedIn(w http.ResponseWriter, r *http.Request) bool {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		return false
	}
	http.Redirect(w, r, "/users/"+principal, http.StatusSeeOther)
	return true
}

// renderLoginFailed re-renders the login page with the one generic failure
// message. The message is identical for every failed attempt.
func (h *Handler) renderLoginFailed(w http.ResponseWriter, r *http.Request, form models.LoginForm) {
	h.render(w, r, http.StatusUnauthorized, "login.html", pageData{
		Title: "Log in",
		Form:  map[string]string{"username": form.Username},
		Flash: service.ErrInvalidCredentials.Error(),
	})
}

// registerFormValues extracts the sticky values for re-rendering the
// registration page. The password is never echoed back.
func registerFormValues(form models.RegisterForm) map[string]string {
	return map[string]string{
		"username":   form.Username,
		"email":      form.Email,
		"first_name": form.FirstName,
		"last_name":  form.LastName,
	}
}
