// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageTemplates holds one parsed template set per page, each combining the
// shared base layout with the page body. Parsed once at startup; a broken
// template is a programming error and panics via template.Must.
var pageTemplates = func() map[string]*template.Template {
	pages := map[string]*template.Template{}
	for _, page := range []string{"register.html", "login.html", "user.html", "note_form.html"} {
		pages[page] = template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+page))
	}
	return pages
}()

// pageData is the payload handed to every page template.
type pageData struct {
	Title string

	// Principal is the logged-in username, empty for anonymous visitors.
	Principal string

	// CSRFToken is echoed into every mutating form as a hidden field.
	CSRFToken string

	// Form holds sticky values for re-rendering a rejected submission.
	Form map[string]string

	// Errors carries per-field validation messages.
	Errors models.FieldErrors

	// Flash is a single generic message, used for failed logins.
	Flash string

	User  models.User
	Notes []models.Note
	Note  models.Note

	// Action is the form target for pages shared between create and update.
	Action string
}

// render executes the named page template into a buffer and writes it out
// with the given status. Buffering first means a template failure produces a
// clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := pageTemplates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("error writing rendered page")
	}
}
