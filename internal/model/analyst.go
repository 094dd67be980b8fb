package model

import "time"

// Analyst is the role profile for data-analyst accounts.
type Analyst struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Analyst) ProfileID() int       { return a.ID }
func (a *Analyst) ProfileName() string  { return a.Name }
func (a *Analyst) ProfileEmail() string { return a.Email }
