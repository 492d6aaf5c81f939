package token

import (
	"testing"
	"time"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	manager := NewJWTManager(Config{
		SecretKey: "test-secret-key",
		TTL:       time.Hour,
		Issuer:    "test-issuer",
	})

	tokenString, err := manager.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if tokenString == "" {
		t.Error("Issue() returned empty token")
	}

	subject, err := manager.Verify(tokenString)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if subject != "admin" {
		t.Errorf("subject = %v, want %v", subject, "admin")
	}
}

func TestJWTManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTManager(Config{SecretKey: "secret-a", TTL: time.Hour, Issuer: "test"})
	verifier := NewJWTManager(Config{SecretKey: "secret-b", TTL: time.Hour, Issuer: "test"})

	tokenString, err := issuer.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := verifier.Verify(tokenString); err == nil {
		t.Error("Verify() accepted a token signed with a different secret")
	}
}

func TestJWTManager_Verify_Expired(t *testing.T) {
	manager := NewJWTManager(Config{SecretKey: "test-secret-key", TTL: -time.Minute, Issuer: "test"})

	tokenString, err := manager.Issue("admin")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := manager.Verify(tokenString); err != ErrExpiredToken {
		t.Errorf("Verify() error = %v, want %v", err, ErrExpiredToken)
	}
}

func TestJWTManager_Verify_Garbage(t *testing.T) {
	manager := NewJWTManager(Config{SecretKey: "test-secret-key", TTL: time.Hour, Issuer: "test"})

	if _, err := manager.Verify("not-a-token"); err != ErrInvalidToken {
		t.Errorf("Verify() error = %v, want %v", err, ErrInvalidToken)
	}
}
