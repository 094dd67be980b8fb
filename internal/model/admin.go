package model

import "time"

// Admin is the role profile for system-administrator accounts.
type Admin struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Admin) ProfileID() int       { return a.ID }
func (a *Admin) ProfileName() string  { return a.Name }
func (a *Admin) ProfileEmail() string { return a.Email }
