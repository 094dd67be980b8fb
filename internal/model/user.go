package model

import "time"

// User is the credential record behind every account, regardless of role.
// Profile data lives in the role-specific tables and references users.id.
type User struct {
	ID           int       `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SignupRequest is the payload for account self-registration.
// Profile extras are optional; the role-specific columns they feed are
// nullable and can be filled in later.
type SignupRequest struct {
	FullName      string `json:"full_name" binding:"required,min=2,max=100"`
	Email         string `json:"email" binding:"required,email,max=255"`
	Password      string `json:"password" binding:"required,min=6,max=128"`
	Role          string `json:"role" binding:"required"`
	EnrollmentKey string `json:"enrollment_key" binding:"omitempty,max=255"`

	// Student extras
	DOB            string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Country        string `json:"country" binding:"omitempty,max=50"`
	SkillLevel     string `json:"skill_level" binding:"omitempty,max=50"`
	ContactNumber  string `json:"contact_number" binding:"omitempty,max=20"`
	Specialization string `json:"specialization" binding:"omitempty,max=100"`

	// Instructor extras
	Department string `json:"department" binding:"omitempty,max=100"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        Role   `json:"role"`
}
