package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/utils"
)

func (h *Handler) userPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)
	username := chi.URLParam(r, "username")

	user, notes, err := h.services.UserService.UserPage(ctx, session.Username, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("cannot load user page")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.render(w, r, http.StatusOK, "user.html", pageData{
		Title:     user.Username,
		Principal: session.Username,
		CSRFToken: session.CSRFToken,
		User:      user,
		Notes:     notes,
	})
}

// deleteUser removes the account together with all its notes and ends the
// session. Runs behind requireSession and requireCSRF.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)
	username := chi.URLParam(r, "username")

	if err := h.services.UserService.DeleteUser(ctx, session.Username, username); err != nil {
		log.Err(err).Str("username", username).Msg("cannot delete user")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
