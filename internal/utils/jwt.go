package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avelichko/notekeeper/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token binding a
// browser session to a username.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username the session is bound to
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//   - csrf: a fresh random anti-forgery token for this session
//
// All parameters are required. Returns an error if any of them are empty or
// zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("notekeeper", "alice", 24*time.Hour, "secret")
func GenerateSessionToken(issuer, username string, sessionDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || sessionDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	csrfToken, err := newCSRFToken()
	if err != nil {
		return models.Token{}, fmt.Errorf("error generating CSRF token: %w", err)
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		CSRF: csrfToken,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     username,
		CSRFToken:    csrfToken,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Returns the decoded token with Username and CSRFToken populated, or an
// error if validation fails or claims are missing.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	username, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if username == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return models.Token{}, errors.New("missing expiration claim")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     username,
		CSRFToken:    claims.CSRF,
		ExpiresAt:    expiresAt.Time,
	}, nil
}

func newCSRFToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
