package user

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service registers users and updates their profiles.
type Service struct {
	store    Store
	hashCost int
	newID    func() string
}

// NewService creates a Service backed by store. Passwords are hashed with
// bcrypt at bcrypt.DefaultCost.
func NewService(store Store) *Service {
	return &Service{
		store:    store,
		hashCost: bcrypt.DefaultCost,
		newID:    func() string { return uuid.New().String() },
	}
}

// Register validates data and creates a new user from it.
func (s *Service) Register(ctx context.Context, data RegistrationData) (*User, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	u := &User{ID: s.newID()}
	if err := s.apply(u, data); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, u); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return u, nil
}

// UpdateProfile validates data and replaces the profile of user id.
// It returns ErrNotFound when the user does not exist.
func (s *Service) UpdateProfile(ctx context.Context, id string, data RegistrationData) (*User, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	u, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "get user")
	}

	if err := s.apply(u, data); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, u); err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return u, nil
}

// CheckPassword reports whether plain matches the stored hash of u.
func CheckPassword(u *User, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

func (s *Service) apply(u *User, data RegistrationData) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.hashCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	u.FirstName = data.FirstName
	u.LastName = data.LastName
	u.Email = data.Email
	u.PhoneNumber = data.PhoneNumber
	u.Address = *data.Address
	u.DateOfBirth = data.DateOfBirth
	u.PasswordHash = string(hash)
	u.Active = data.Active
	return nil
}
