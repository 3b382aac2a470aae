package service

import (
	"fmt"
	"time"

	"github.com/avelichko/notekeeper/internal/config"
	"github.com/avelichko/notekeeper/internal/logger"
	"github.com/avelichko/notekeeper/internal/utils"
	"github.com/avelichko/notekeeper/models"
)

// sessionService is the concrete implementation of SessionService.
// Sessions are stateless: the signed token held by the client is the only
// session record, so there is nothing to persist or revoke server-side.
type sessionService struct {
	// signKey is the HMAC secret used to sign and verify session tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected during parsing.
	issuer string

	// duration controls how long a newly issued session remains valid.
	duration time.Duration

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService populated with security
// parameters from cfg.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// Issue creates a signed session token for the given username. The token
// carries a fresh anti-forgery token in its "csrf" claim.
//
// Returns the token model on success or a wrapped error if generation fails.
func (s *sessionService) Issue(username string) (models.Token, error) {
	token, err := utils.GenerateSessionToken(s.issuer, username, s.duration, s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseSessionToken, verifying the
// signature, the issuer claim, and the expiry. Any validation failure
// (expired, wrong issuer, malformed) is normalised to ErrSessionInvalid so
// that callers do not need to inspect low-level token errors.
func (s *sessionService) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseSessionToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		return models.Token{}, ErrSessionInvalid
	}

	return token, nil
}
