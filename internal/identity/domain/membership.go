package domain

import "time"

// Membership is the sole record of "user belongs to organisation". Its
// identity is the (UserID, OrgID) pair; it carries no attributes of its own.
type Membership struct {
	UserID    string
	OrgID     string
	CreatedAt time.Time
}
