package service

import (
	"context"
	"errors"
	"strings"

	"github.com/inkomoko/identity/internal/identity/domain"
	"github.com/inkomoko/identity/internal/identity/store"
	"github.com/inkomoko/identity/pkg/idx"
	"github.com/inkomoko/identity/pkg/slogx"
)

type OrganisationService struct {
	Store store.Store
}

// Create creates an organisation with a fresh id. It does NOT create a
// membership for the creator; creating an organisation and joining it are
// separate operations in this API.
func (s *OrganisationService) Create(ctx context.Context, name, description string) (domain.Organisation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organisation{}, &ValidationError{Fields: []FieldError{
			{Field: "name", Message: "Name is required"},
		}}
	}

	org := domain.Organisation{
		ID:          idx.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
	}

	if err := s.Store.Organisations().CreateOrganisation(ctx, org); err != nil {
		return domain.Organisation{}, err
	}

	slogx.FromContext(ctx).Info("organisation created", "org_id", org.ID)

	return org, nil
}

// GetByID returns an organisation by id. Any authenticated caller may fetch
// any organisation; visibility is not scoped to membership.
func (s *OrganisationService) GetByID(ctx context.Context, orgID string) (domain.Organisation, error) {
	org, err := s.Store.Organisations().GetOrganisationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organisation{}, ErrOrganisationNotFound
		}
		return domain.Organisation{}, err
	}
	return org, nil
}

// ListForUser returns the organisations the given user belongs to.
func (s *OrganisationService) ListForUser(ctx context.Context, userID string) ([]domain.Organisation, error) {
	return s.Store.Memberships().ListOrganisationsForUser(ctx, userID)
}

// AddUser links an existing user to an existing organisation. Both sides of
// the membership are validated before the insert so a dangling reference is
// reported as the specific missing entity rather than a bare constraint
// failure.
func (s *OrganisationService) AddUser(ctx context.Context, orgID, userID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Organisations().GetOrganisationByID(ctx, orgID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrOrganisationNotFound
			}
			return err
		}
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			UserID: userID,
			OrgID:  orgID,
		})
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAlreadyMember
		}
		return err
	})
}
