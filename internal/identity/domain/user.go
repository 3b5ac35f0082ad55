package domain

import "time"

type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string // unique across all users
	PasswordHash string // argon2id encoded, never serialized
	Phone        string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
