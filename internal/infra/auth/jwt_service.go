// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasktrack/config"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
)

const defaultAccessTTL = 30 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing secret is process-wide, loaded once from configuration; rotating
// it invalidates every outstanding token, which is acceptable for short-lived
// stateless tokens.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := defaultAccessTTL
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: ttl,
	}, nil
}

// Issue creates a signed HS256 token with the username as subject.
func (s *jwtService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,                    // Subject (who the token is for)
		"iat": now.Unix(),                  // Issued At
		"exp": now.Add(s.accessTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate parses and verifies a token string and returns its subject.
// The returned error wraps the jwt/v5 sentinels (jwt.ErrTokenMalformed,
// jwt.ErrTokenSignatureInvalid, jwt.ErrTokenExpired), but callers must not
// branch on them: every validation failure maps to the same generic 401.
func (s *jwtService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to validate access token")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.Wrap(jwt.ErrTokenInvalidClaims, "token has no subject")
	}

	return subject, nil
}

// TTL returns the configured access token time-to-live.
func (s *jwtService) TTL() time.Duration {
	return s.accessTTL
}
