package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"brioche-tracker/repository"
)

// ErrInvalidPIN is returned when the supplied PIN does not match.
var ErrInvalidPIN = fmt.Errorf("invalid pin")

// AuthService issues and verifies session tokens for PIN logins.
// Implements AuthServiceInterface.
type AuthService struct {
	settings repository.SettingsRepositoryInterface
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService. secret signs the session
// tokens (HS256) and must not be empty.
func NewAuthService(settings repository.SettingsRepositoryInterface, secret string) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, fmt.Errorf("session secret is not set")
	}
	return &AuthService{
		settings: settings,
		secret:   []byte(secret),
		tokenTTL: 12 * time.Hour,
	}, nil
}

// Ensure AuthService implements AuthServiceInterface
var _ AuthServiceInterface = (*AuthService)(nil)

// LoginWithPIN checks the PIN against the stored one and issues a signed
// session token on success.
func (s *AuthService) LoginWithPIN(ctx context.Context, pin string) (string, error) {
	stored, err := s.settings.GetPIN(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load pin: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(pin)), []byte(stored)) != 1 {
		log.Printf("❌ LoginWithPIN: Wrong PIN attempt")
		return "", ErrInvalidPIN
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
		"sub": "tracker",
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	log.Printf("🔑 LoginWithPIN: Session token issued")
	return signed, nil
}

// VerifyToken validates a session token's signature and expiry.
func (s *AuthService) VerifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid session token")
	}
	return nil
}
