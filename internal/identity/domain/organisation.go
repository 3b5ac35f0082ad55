package domain

import "time"

type Organisation struct {
	ID          string
	Name        string
	Description string // optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
