// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/store"
)

func authConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
		Admin: config.AdminConfig{
			Email:    "admin@rmagrichem.com",
			Password: "admin",
		},
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	session := store.NewSession()
	svc := NewAuthService(authConfig(), session)

	_, err := svc.Login(&LoginRequest{Email: "wrong@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())

	_, err = svc.Login(&LoginRequest{Email: "admin@rmagrichem.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())
}

func TestLoginLogoutFlow(t *testing.T) {
	session := store.NewSession()
	svc := NewAuthService(authConfig(), session)

	auth, err := svc.Login(&LoginRequest{Email: "admin@rmagrichem.com", Password: "admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, "Bearer", auth.TokenType)
	assert.True(t, svc.IsAuthenticated())

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	session := store.NewSession()
	svc := NewAuthService(authConfig(), session)

	_, err := svc.Login(&LoginRequest{Email: "Admin@RMagrichem.com", Password: "admin"})
	assert.NoError(t, err)
	assert.True(t, svc.IsAuthenticated())
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-Pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := authConfig()
	cfg.Admin.PasswordHash = string(hash)

	session := store.NewSession()
	svc := NewAuthService(cfg, session)

	// Plain password field is ignored once a hash is configured
	_, err = svc.Login(&LoginRequest{Email: "admin@rmagrichem.com", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Email: "admin@rmagrichem.com", Password: "s3cret-Pass"})
	assert.NoError(t, err)
}

func TestLoginValidation(t *testing.T) {
	session := store.NewSession()
	svc := NewAuthService(authConfig(), session)

	_, err := svc.Login(&LoginRequest{Email: "not-an-email", Password: "admin"})
	assert.Error(t, err)
	assert.False(t, svc.IsAuthenticated())
}
