// Package memory provides in-process implementations of the domain stores.
// None of them are safe for concurrent use.
package memory

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/cleancode-kart/internal/domain/user"
)

var _ user.Store = (*UserRepository)(nil)

// UserRepository implements user.Store on a map. Users are copied on the way
// in and out so callers cannot mutate stored records.
type UserRepository struct {
	users map[string]user.User
}

// NewUserRepository returns an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

// Create stores a new user. It fails if the ID is already taken.
func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; ok {
		return errors.Errorf("user %q already exists", u.ID)
	}
	r.users[u.ID] = *u
	return nil
}

// Get returns a copy of the user with the given ID, or user.ErrNotFound.
func (r *UserRepository) Get(_ context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &u, nil
}

// Update replaces an existing user, or returns user.ErrNotFound.
func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}
