package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure ambient env doesn't leak into the defaults under test.
	for _, key := range []string{
		"SERVER_PORT", "SECRET_KEY", "ACCESS_TOKEN_EXPIRE_MINUTES",
		"INSTRUCTOR_KEY", "ANALYST_KEY", "ADMIN_KEY", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "" {
		t.Errorf("JWTSecret = %q, want empty (no default secret)", cfg.JWTSecret)
	}
	if cfg.AllowedOrigins != nil {
		t.Errorf("AllowedOrigins = %v, want nil", cfg.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SECRET_KEY", "super-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg := Load()

	if cfg.ServerPort != "9999" {
		t.Errorf("ServerPort = %q, want 9999", cfg.ServerPort)
	}
	if cfg.JWTSecret != "super-secret" {
		t.Errorf("JWTSecret = %q, want super-secret", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 5*time.Minute {
		t.Errorf("TokenTTL = %v, want 5m", cfg.TokenTTL)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("AllowedOrigins[%d] = %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")
	cfg := Load()
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("TokenTTL = %v, want 30m fallback", cfg.TokenTTL)
	}
}

func TestEnrollmentKey(t *testing.T) {
	t.Setenv("INSTRUCTOR_KEY", "instr-key")
	t.Setenv("ANALYST_KEY", "")
	t.Setenv("ADMIN_KEY", "admin-key")
	cfg := Load()

	if key, required := cfg.EnrollmentKey("instructor"); !required || key != "instr-key" {
		t.Errorf("EnrollmentKey(instructor) = (%q, %t), want (instr-key, true)", key, required)
	}
	if key, required := cfg.EnrollmentKey("analyst"); !required || key != "" {
		// Required but unconfigured: signup for the role is disabled.
		t.Errorf("EnrollmentKey(analyst) = (%q, %t), want (\"\", true)", key, required)
	}
	if _, required := cfg.EnrollmentKey("student"); required {
		t.Error("EnrollmentKey(student) required = true, want false")
	}
}
