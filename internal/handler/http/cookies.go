package http

import (
	"net/http"

	"github.com/avelichko/notekeeper/models"
)

const (
	// sessionCookieName is the name of the cookie carrying the signed
	// session token.
	sessionCookieName = "session"

	// csrfFieldName is the hidden form field mutating pages must echo.
	csrfFieldName = "csrf_token"
)

// setSessionCookie installs the signed session token on the response.
// The cookie lifetime matches the token expiry, and the cookie is HttpOnly
// so that page scripts cannot read the token.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
