package domain

import "time"

// Identity is a resolved user of the museum. Email is the natural key.
type Identity struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	PasswordHash string
	CreatedAt    time.Time
}
