// internal/services/auth_service.go
package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/store"
	"github.com/rmagrichem/agrichem-backend/internal/utils"
)

// ErrInvalidCredentials signals an authentication mismatch. The
// session flag is left unchanged when it is returned.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService gates the administrative role behind a single configured
// credential. There is no user registry, token revocation or expiry
// state beyond the JWT itself; the in-memory flag resets with the
// process.
type AuthService struct {
	cfg     *config.Config
	session *store.Session
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // in seconds
}

func NewAuthService(cfg *config.Config, session *store.Session) *AuthService {
	return &AuthService{
		cfg:     cfg,
		session: session,
	}
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !strings.EqualFold(req.Email, s.cfg.Admin.Email) {
		return nil, ErrInvalidCredentials
	}

	if err := s.checkPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(s.cfg.Admin.Email, "admin", s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.session.MarkAuthenticated()

	return &AuthResponse{
		Email:       s.cfg.Admin.Email,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}

func (s *AuthService) Logout() {
	s.session.Reset()
}

func (s *AuthService) IsAuthenticated() bool {
	return s.session.IsAuthenticated()
}

func (s *AuthService) checkPassword(password string) error {
	if s.cfg.Admin.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(password))
	}

	// Development fallback: plain comparison against the configured
	// password, constant time to keep the two paths symmetric.
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Admin.Password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
