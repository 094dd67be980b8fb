package model

import "time"

// Instructor is the role profile for instructor accounts.
type Instructor struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department *string   `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (i *Instructor) ProfileID() int       { return i.ID }
func (i *Instructor) ProfileName() string  { return i.Name }
func (i *Instructor) ProfileEmail() string { return i.Email }
