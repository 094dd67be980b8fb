package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/model"
)

func testAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   ttl,
		BcryptCost: 4, // MinCost, keeps tests fast
	})
}

func TestHashPasswordRoundTrip(t *testing.T) {
	auth := testAuthService(time.Minute)

	hash, err := auth.HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}

	if err := auth.CheckPassword(hash, "s3cret-password"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := auth.CheckPassword(hash, "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword with wrong password = %v, want ErrInvalidCredentials", err)
	}
}

func TestHashPasswordTooLong(t *testing.T) {
	auth := testAuthService(time.Minute)

	// 72 bytes is the bcrypt input limit; exactly 72 must still work.
	if _, err := auth.HashPassword(strings.Repeat("a", 72)); err != nil {
		t.Errorf("HashPassword(72 bytes): %v", err)
	}
	if _, err := auth.HashPassword(strings.Repeat("a", 73)); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("HashPassword(73 bytes) = %v, want ErrPasswordTooLong", err)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	auth := testAuthService(time.Minute)
	if err := auth.CheckPassword("not-a-bcrypt-hash", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword(malformed hash) = %v, want ErrInvalidCredentials", err)
	}
}

func TestIssueAndParseToken(t *testing.T) {
	auth := testAuthService(time.Minute)

	token, err := auth.IssueToken("alice@example.com", model.RoleStudent, 42)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := auth.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("Subject = %q, want alice@example.com", claims.Subject)
	}
	if claims.Role != model.RoleStudent {
		t.Errorf("Role = %q, want student", claims.Role)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.ID == "" {
		t.Error("token ID (jti) is empty")
	}
}

func TestParseTokenExpired(t *testing.T) {
	auth := testAuthService(-time.Minute)

	token, err := auth.IssueToken("bob@example.com", model.RoleAdmin, 1)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := auth.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ParseToken(expired) = %v, want ErrTokenExpired", err)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	auth := testAuthService(time.Minute)
	token, err := auth.IssueToken("carol@example.com", model.RoleAnalyst, 7)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	other := NewAuthService(&config.Config{JWTSecret: "different-secret", TokenTTL: time.Minute})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("ParseToken(wrong secret) = %v, want ErrTokenInvalid", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	auth := testAuthService(time.Minute)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := auth.ParseToken(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseToken(%q) = %v, want ErrTokenInvalid", tok, err)
		}
	}
}
