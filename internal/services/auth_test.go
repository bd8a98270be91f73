package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionRoundTrip(t *testing.T) {
	s := NewAuthService(nil, "test-secret", time.Hour)

	session, err := s.issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if session.HostID != 42 {
		t.Fatalf("expected host 42, got %d", session.HostID)
	}
	if remaining := time.Until(session.ExpiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Fatalf("unexpected expiry %v", session.ExpiresAt)
	}

	hostID, err := s.ValidateToken(session.Token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if hostID != 42 {
		t.Fatalf("expected host 42 from token, got %d", hostID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a", time.Hour)
	checker := NewAuthService(nil, "secret-b", time.Hour)

	session, err := issuer.issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := checker.ValidateToken(session.Token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	s := NewAuthService(nil, "test-secret", time.Hour)
	s.ttl = -time.Minute

	session, err := s.issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := s.ValidateToken(session.Token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	s := NewAuthService(nil, "test-secret", time.Hour)

	claims := hostClaims{
		HostID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.ValidateToken(token); err == nil {
		t.Fatal("expected foreign issuer to be rejected")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := NewAuthService(nil, "test-secret", time.Hour)
	if _, err := s.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
