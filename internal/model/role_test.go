package model

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"student", "instructor", "analyst", "admin"} {
		role, err := ParseRole(raw)
		if err != nil {
			t.Errorf("ParseRole(%q): %v", raw, err)
		}
		if string(role) != raw {
			t.Errorf("ParseRole(%q) = %q", raw, role)
		}
	}

	for _, raw := range []string{"", "Student", "superadmin", "ADMIN"} {
		if _, err := ParseRole(raw); !errors.Is(err, ErrInvalidRole) {
			t.Errorf("ParseRole(%q) = %v, want ErrInvalidRole", raw, err)
		}
	}
}

func TestRoleKeyed(t *testing.T) {
	if RoleStudent.Keyed() {
		t.Error("student must not require an enrollment key")
	}
	for _, role := range []Role{RoleInstructor, RoleAnalyst, RoleAdmin} {
		if !role.Keyed() {
			t.Errorf("%s must require an enrollment key", role)
		}
	}
}

func TestPrincipalImplementations(t *testing.T) {
	var principals = []Principal{
		&Student{ID: 1, Name: "S", Email: "s@example.com"},
		&Instructor{ID: 2, Name: "I", Email: "i@example.com"},
		&Analyst{ID: 3, Name: "A", Email: "a@example.com"},
		&Admin{ID: 4, Name: "M", Email: "m@example.com"},
	}
	for i, p := range principals {
		if p.ProfileID() != i+1 {
			t.Errorf("ProfileID = %d, want %d", p.ProfileID(), i+1)
		}
		if p.ProfileName() == "" || p.ProfileEmail() == "" {
			t.Errorf("principal %d has empty name or email", i)
		}
	}
}
