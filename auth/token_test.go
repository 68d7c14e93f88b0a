package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	t.Run("issue and verify round trip", func(t *testing.T) {
		token, err := svc.Issue("alice")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		username, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("Verify failed: %v", err)
		}
		if username != "alice" {
			t.Errorf("subject mismatch: got %q, want %q", username, "alice")
		}
	})

	t.Run("expired token fails", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.Issue("alice")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
		}
	})

	t.Run("token signed with different secret fails", func(t *testing.T) {
		forged := NewTokenService("other-secret", time.Hour)
		token, err := forged.Issue("alice")
		if err != nil {
			t.Fatalf("Issue failed: %v", err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for forged token, got %v", err)
		}
	})

	t.Run("malformed token fails", func(t *testing.T) {
		if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for garbage input, got %v", err)
		}
	})

	t.Run("token without subject fails", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for missing subject, got %v", err)
		}
	})
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPassword(hash, "pw123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
