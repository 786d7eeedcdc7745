package service

import (
	"context"
	"errors"
	"testing"
)

// mockSettingsRepository is a mock implementation of
// repository.SettingsRepositoryInterface for testing.
type mockSettingsRepository struct {
	pin         string
	shouldError bool
}

func (m *mockSettingsRepository) GetPIN(ctx context.Context) (string, error) {
	if m.shouldError {
		return "", errors.New("db error")
	}
	return m.pin, nil
}

func (m *mockSettingsRepository) SetPIN(ctx context.Context, pin string) error {
	if m.shouldError {
		return errors.New("db error")
	}
	m.pin = pin
	return nil
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	if _, err := NewAuthService(&mockSettingsRepository{}, ""); err == nil {
		t.Error("Expected error for empty secret")
	}
	if _, err := NewAuthService(&mockSettingsRepository{}, "   "); err == nil {
		t.Error("Expected error for blank secret")
	}
}

func TestLoginWithPIN(t *testing.T) {
	ctx := context.Background()

	svc, err := NewAuthService(&mockSettingsRepository{pin: "2026"}, "test-secret")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	t.Run("correct pin issues a verifiable token", func(t *testing.T) {
		token, err := svc.LoginWithPIN(ctx, "2026")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if token == "" {
			t.Fatal("Expected a non-empty token")
		}
		if err := svc.VerifyToken(token); err != nil {
			t.Errorf("Expected issued token to verify, got %v", err)
		}
	})

	t.Run("pin is trimmed before comparison", func(t *testing.T) {
		if _, err := svc.LoginWithPIN(ctx, "  2026 "); err != nil {
			t.Errorf("Expected trimmed pin to match, got %v", err)
		}
	})

	t.Run("wrong pin", func(t *testing.T) {
		_, err := svc.LoginWithPIN(ctx, "0000")
		if !errors.Is(err, ErrInvalidPIN) {
			t.Errorf("Expected ErrInvalidPIN, got %v", err)
		}
	})

	t.Run("settings failure propagates", func(t *testing.T) {
		broken, _ := NewAuthService(&mockSettingsRepository{shouldError: true}, "test-secret")
		if _, err := broken.LoginWithPIN(ctx, "2026"); err == nil || errors.Is(err, ErrInvalidPIN) {
			t.Errorf("Expected a load error distinct from ErrInvalidPIN, got %v", err)
		}
	})
}

func TestVerifyToken(t *testing.T) {
	svc, _ := NewAuthService(&mockSettingsRepository{pin: "2026"}, "test-secret")
	other, _ := NewAuthService(&mockSettingsRepository{pin: "2026"}, "other-secret")

	token, err := svc.LoginWithPIN(context.Background(), "2026")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := other.VerifyToken(token); err == nil {
		t.Error("Expected token signed with a different secret to be rejected")
	}

	if err := svc.VerifyToken("not-a-token"); err == nil {
		t.Error("Expected garbage token to be rejected")
	}
}
