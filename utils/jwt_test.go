package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("cust-42", "dana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := ExtractIDFromToken(token)
	if err != nil {
		t.Fatalf("ExtractIDFromToken failed: %v", err)
	}
	if id != "cust-42" {
		t.Errorf("extracted id = %q, want cust-42", id)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("cust-42", "dana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := ExtractIDFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ExtractIDFromToken("not.a.token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
