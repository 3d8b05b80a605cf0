package service

import "time"

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless and self-contained: the server keeps no session store,
// and a token cannot be revoked before its expiration.
type TokenService interface {
	// Issue creates a signed token asserting the given username as subject,
	// valid for the service's configured time-to-live.
	Issue(username string) (string, error)

	// Validate checks the token's signature and expiration and returns the
	// subject username. The error chain distinguishes malformed, tampered and
	// expired tokens, but callers must treat every failure identically.
	Validate(token string) (string, error)

	// TTL returns the configured access token time-to-live.
	TTL() time.Duration
}
