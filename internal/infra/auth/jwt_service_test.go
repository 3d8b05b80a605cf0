package auth

import (
	"testing"
	"time"

	"tasktrack/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access: "test_access_secret_key_very_long_for_testing",
		},
	}
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	require.NotNil(t, svc)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Issue with a negative TTL so the token is already expired.
	expiredSvc := &jwtService{
		secret:    []byte("test_access_secret_key_very_long_for_testing"),
		accessTTL: -time.Minute,
	}

	token, err := expiredSvc.Issue("alice")
	require.NoError(t, err)

	subject, err := expiredSvc.Validate(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherSvc := &jwtService{
		secret:    []byte("a_completely_different_secret_key"),
		accessTTL: defaultAccessTTL,
	}

	token, err := otherSvc.Issue("alice")
	require.NoError(t, err)

	subject, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.True(t, errors.Is(err, jwt.ErrTokenSignatureInvalid))
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	subject, err := svc.Validate("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Empty(t, subject)
	assert.True(t, errors.Is(err, jwt.ErrTokenMalformed))
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}

func TestJWTService_TTL(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)
	assert.Equal(t, defaultAccessTTL, svc.TTL())

	cfg := newTestJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 5 * time.Minute}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, svc.TTL())
}
