package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.GenerateToken("sess-1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("token already expired")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.SessionID != "sess-1" || claims.Username != "admin" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	other := NewTokenManager("different", time.Hour)

	token, _, err := tm.GenerateToken("sess-1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestTokenDefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, expiresAt, err := tm.GenerateToken("sess-1", "admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(expiresAt) < 7*time.Hour {
		t.Fatalf("default ttl too short: %v", time.Until(expiresAt))
	}
}
