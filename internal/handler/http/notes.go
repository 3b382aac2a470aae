// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/service"
	"github.com/avelichko/notekeeper/internal/utils"
	"github.com/avelichko/notekeeper/models"
)

func (h *Handler) noteAddPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)
	username := chi.URLParam(r, "username")

	if err := service.Authorize(session.Username, username); err != nil {
		log.Err(err).Str("username", username).Msg("cannot open note form for another user")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	h.render(w, r, http.StatusOK, "note_form.html", pageData{
		Title:     "Add note",
		Principal: session.Username,
		CSRFToken: session.CSRFToken,
		Action:    "/users/" + username + "/notes/add",
	})
}

func (h *Handler) noteAddSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)
	username := chi.URLParam(r, "username")

	form := models.NoteForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	note, err := h.services.NoteService.CreateNote(ctx, session.Username, username, form)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			log.Debug().Msg("note rejected")
			h.render(w, r, http.StatusUnprocessableEntity, "note_form.html", pageData{
				Title:     "Add note",
				Principal: session.Username,
				CSRFToken: session.CSRFToken,
				Action:    "/users/" + username + "/notes/add",
				Form:      noteFormValues(form),
				Errors:    vErr.Fields,
			})
			return
		}
		log.Err(err).Str("username", username).Msg("cannot create note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.Redirect(w, r, "/users/"+note.Username, http.StatusSeeOther)
}

func (h *Handler) noteEditPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id")
		http.Error(w, "malformed note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.NoteByID(ctx, session.Username, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("cannot load note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	h.render(w, r, http.StatusOK, "note_form.html", pageData{
		Title:     "Edit note",
		Principal: session.Username,
		CSRFToken: session.CSRFToken,
		Action:    "/notes/" + strconv.FormatInt(note.ID, 10) + "/update",
		Form:      map[string]string{"title": note.Title, "content": note.Content},
	})
}

func (h *Handler) noteEditSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id")
		http.Error(w, "malformed note id", http.StatusBadRequest)
		return
	}

	form := models.NoteForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	note, err := h.services.NoteService.UpdateNote(ctx, session.Username, id, form)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			log.Debug().Msg("note rejected")
			h.render(w, r, http.StatusUnprocessableEntity, "note_form.html", pageData{
				Title:     "Edit note",
				Principal: session.Username,
				CSRFToken: session.CSRFToken,
				Action:    "/notes/" + strconv.FormatInt(id, 10) + "/update",
				Form:      noteFormValues(form),
				Errors:    vErr.Fields,
			})
			return
		}
		log.Err(err).Int64("id", id).Msg("cannot update note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.Redirect(w, r, "/users/"+note.Username, http.StatusSeeOther)
}

func (h *Handler) noteDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, _ := utils.GetSessionFromContext(ctx)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("malformed note id")
		http.Error(w, "malformed note id", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.DeleteNote(ctx, session.Username, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("cannot delete note")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	http.Redirect(w, r, "/users/"+note.Username, http.StatusSeeOther)
}

// noteIDFromRequest parses the {id} URL parameter.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// noteFormValues extracts the sticky values for re-rendering a rejected
// note form.
func noteFormValues(form models.NoteForm) map[string]string {
	return map[string]string{
		"title":   form.Title,
		"content": form.Content,
	}
}
