package model

import "time"

// Student is the role profile for student accounts.
type Student struct {
	ID             int        `json:"id"`
	UserID         int        `json:"user_id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	DOB            *time.Time `json:"dob,omitempty"`
	Country        *string    `json:"country,omitempty"`
	SkillLevel     *string    `json:"skill_level,omitempty"`
	ContactNumber  *string    `json:"contact_number,omitempty"`
	Specialization *string    `json:"specialization,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (s *Student) ProfileID() int       { return s.ID }
func (s *Student) ProfileName() string  { return s.Name }
func (s *Student) ProfileEmail() string { return s.Email }

// UpdateStudentProfileRequest is the payload for a student updating their
// own contact details and skill level.
type UpdateStudentProfileRequest struct {
	ContactNumber string `json:"contact_number" binding:"omitempty,max=20"`
	SkillLevel    string `json:"skill_level" binding:"omitempty,max=50"`
}
