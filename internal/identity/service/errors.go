package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserNotFound reports a login or lookup against an unknown user.
	// Kept distinct from ErrIncorrectPassword so the transport can present
	// 404 vs 401 the way the API contract requires.
	ErrUserNotFound = errors.New("user not found")

	// ErrIncorrectPassword reports a credential mismatch for a known user.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrOrganisationNotFound reports a lookup or membership write against
	// an unknown organisation.
	ErrOrganisationNotFound = errors.New("organisation not found")

	// ErrAlreadyMember reports an attempt to create a membership pair that
	// already exists.
	ErrAlreadyMember = errors.New("user already belongs to organisation")
)

// FieldError is a single field-level validation failure, structured so the
// caller can correct their input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field-level violation for a request. It is
// always produced before any write; a request that fails validation has no
// side effects.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
