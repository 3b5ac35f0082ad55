package http

import (
	"github.com/inkomoko/identity/internal/identity/domain"
	"github.com/inkomoko/identity/internal/identity/service"
)

// envelope is the response shape shared by every endpoint:
// {"status","message","data"} on success, {"status","message","errors"} on
// field-level failure.
type envelope struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Data    any                  `json:"data,omitempty"`
	Errors  []service.FieldError `json:"errors,omitempty"`
}

// userPayload is a user's public profile. The password hash never appears
// here; this struct is the only user shape that crosses the wire.
type userPayload struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type organisationPayload struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// sessionPayload is the data block returned by register and login.
type sessionPayload struct {
	AccessToken string      `json:"accessToken"`
	User        userPayload `json:"user"`
}

type membershipPayload struct {
	UserID string `json:"userId"`
	OrgID  string `json:"orgId"`
}

func toUserPayload(u domain.User) userPayload {
	return userPayload{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

func toOrganisationPayload(o domain.Organisation) organisationPayload {
	return organisationPayload{
		OrgID:       o.ID,
		Name:        o.Name,
		Description: o.Description,
	}
}
