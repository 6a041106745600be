package service

import (
	"errors"
	"testing"
	"time"

	"github.com/civicworks/complaint-system/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", map[string]any{"role": "ADMIN"})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Verify(token, "alice")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "ADMIN" {
		t.Fatalf("unexpected role claim: %s", claims.Role)
	}
	if claims.ExpiresAt.Before(time.Now().Add(50 * time.Minute)) {
		t.Fatalf("expiry too soon: %v", claims.ExpiresAt)
	}
}

func TestTokenService_Verify_WrongSubject(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", nil)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token, "bob"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	token, err := svc.Issue("alice", nil)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("secret", time.Hour).Verify(token, "alice"); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).Issue("alice", nil)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenService("other", time.Hour).Verify(token, ""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	if _, err := svc.Verify("not-a-token", ""); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenService_ExpirationSeconds(t *testing.T) {
	if got := NewTokenService("secret", time.Hour).ExpirationSeconds(); got != 3600 {
		t.Fatalf("expected 3600, got %d", got)
	}
	// Non-positive TTL falls back to the default.
	if got := NewTokenService("secret", 0).ExpirationSeconds(); got != int64(defaultTokenTTL.Seconds()) {
		t.Fatalf("expected default ttl, got %d", got)
	}
}
