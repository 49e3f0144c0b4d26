package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	signed, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if signed == "" {
		t.Fatal("Issue returned empty token")
	}

	userID, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Verify subject: got %q, want %q", userID, "user-123")
	}
}

func TestVerify_Expired(t *testing.T) {
	// Negative TTL issues a token that is already past its expiry.
	svc := NewService([]byte("test-secret"), -time.Minute)

	signed, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-a"), time.Hour)
	verifier := NewService([]byte("secret-b"), time.Hour)

	signed, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Errorf("Verify(%q): expected error", tok)
		}
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewService(secret, time.Hour)

	// Same secret, but HS512: must be rejected by the HS256-only check.
	claims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign HS512: %v", err)
	}

	if _, err := svc.Verify(signed); err == nil {
		t.Fatal("expected error for HS512-signed token")
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewService(secret, time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); err == nil {
		t.Fatal("expected error for token without a subject")
	}
}
