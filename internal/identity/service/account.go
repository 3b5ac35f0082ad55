package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/inkomoko/identity/internal/identity/domain"
	"github.com/inkomoko/identity/internal/identity/store"
	"github.com/inkomoko/identity/pkg/cryptox"
	"github.com/inkomoko/identity/pkg/idx"
	"github.com/inkomoko/identity/pkg/jwtx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// AccountService owns registration and login: the only multi-entity
// transaction in the system plus credential verification and token issuance.
type AccountService struct {
	Store  store.Store
	Signer jwtx.Issuer
}

// RegisterInput carries the raw registration request. Phone is optional;
// everything else is required.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Session is the result of a successful registration or login: the user's
// profile and a bearer token asserting their identity.
type Session struct {
	User        domain.User
	AccessToken string
}

// Register validates the input, then atomically creates the user, their
// default organisation and the membership linking them. Either all three
// records exist afterwards or none do.
//
// All validation violations are collected, not just the first; the email
// uniqueness pre-check contributes a field error too, but the storage-level
// UNIQUE constraint remains the authoritative conflict signal under races.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	log := slogx.FromContext(ctx)

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	var fields []FieldError
	if in.FirstName == "" {
		fields = append(fields, FieldError{Field: "firstName", Message: "First name is required"})
	}
	if in.LastName == "" {
		fields = append(fields, FieldError{Field: "lastName", Message: "Last name is required"})
	}
	if in.Email == "" {
		fields = append(fields, FieldError{Field: "email", Message: "Email is required"})
	}
	if in.Password == "" {
		fields = append(fields, FieldError{Field: "password", Message: "Password is required"})
	}

	if in.Email != "" {
		taken, err := s.Store.Users().EmailExists(ctx, in.Email)
		if err != nil {
			return Session{}, err
		}
		if taken {
			fields = append(fields, emailTakenError())
		}
	}

	if len(fields) > 0 {
		return Session{}, &ValidationError{Fields: fields}
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}

	orgName := fmt.Sprintf("%s's organisation", user.FirstName)
	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        orgName,
		Description: fmt.Sprintf("%s description", orgName),
	}

	var token string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		if err := tx.Organisations().CreateOrganisation(ctx, org); err != nil {
			return err
		}
		if err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: user.ID,
			OrgID:  org.ID,
		}); err != nil {
			return err
		}

		// Issue inside the transaction: a signing failure rolls back all
		// three inserts, so the caller never ends up with an account they
		// were told failed to create.
		t, err := s.Signer.Issue(user.ID)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		token = t
		return nil
	})
	if err != nil {
		// A concurrent registration won the race between the pre-check and
		// the insert; report it the same way as the pre-check would have.
		if errors.Is(err, store.ErrAlreadyExists) {
			return Session{}, &ValidationError{Fields: []FieldError{emailTakenError()}}
		}
		return Session{}, fmt.Errorf("register transaction: %w", err)
	}

	log.Info("user registered", "user_id", user.ID, "org_id", org.ID)

	return Session{User: user, AccessToken: token}, nil
}

// Login verifies the credentials for an email and issues a session token.
// An unknown email (ErrUserNotFound) stays distinguishable from a wrong
// password (ErrIncorrectPassword).
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrUserNotFound
		}
		return Session{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login rejected", "user_id", user.ID)
		return Session{}, ErrIncorrectPassword
	}

	token, err := s.Signer.Issue(user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{User: user, AccessToken: token}, nil
}

func emailTakenError() FieldError {
	return FieldError{Field: "email", Message: "Email Address already in use"}
}
