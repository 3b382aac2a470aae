package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by the signed session cookie.
//
// It extends the standard registered claims with a per-session anti-forgery
// token. The "sub" claim holds the authenticated username; "iss" and "exp"
// are validated on every request.
type SessionClaims struct {
	jwt.RegisteredClaims

	// CSRF is the anti-forgery token issued together with the session.
	// Mutating forms must echo this value back; handlers compare it in
	// constant time before applying any effect.
	CSRF string `json:"csrf"`
}

// Token wraps a parsed session token with convenience accessors used by the
// HTTP layer.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be set as a cookie value.
//
// Username and CSRFToken are cached copies of the corresponding claims,
// populated during generation or parsing so that handlers do not re-inspect
// the claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the session principal extracted from the "sub" claim.
	Username string `json:"-"`

	// CSRFToken is the anti-forgery token extracted from the "csrf" claim.
	CSRFToken string `json:"-"`

	// ExpiresAt is the session expiry extracted from the "exp" claim. The
	// HTTP layer aligns the cookie lifetime with it.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
