package service

import (
	"context"
	"errors"

	"github.com/inkomoko/identity/internal/identity/domain"
	"github.com/inkomoko/identity/internal/identity/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByID fetches a user's public profile by id. Any caller may fetch
// any user; there is no authorization scoping on profiles.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
