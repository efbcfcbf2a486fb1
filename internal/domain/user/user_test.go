package user

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock implementations ---

type mockStore struct {
	users     map[string]*User
	createErr error
	getErr    error
	updateErr error
}

func newMockStore() *mockStore {
	return &mockStore{users: make(map[string]*User)}
}

func (m *mockStore) Create(_ context.Context, u *User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockStore) Get(_ context.Context, id string) (*User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u, nil
}

func (m *mockStore) Update(_ context.Context, u *User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[u.ID] = u
	return nil
}

// --- Helpers ---

func newTestService(store Store) *Service {
	s := NewService(store)
	s.hashCost = bcrypt.MinCost
	s.newID = func() string { return "user-1" }
	return s
}

func validData() RegistrationData {
	return RegistrationData{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "+1-555-123-4567",
		Address: &Address{
			Street:  "123 Main St",
			City:    "New York",
			State:   "NY",
			ZipCode: "10001",
			Country: "USA",
		},
		DateOfBirth: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Password:    "password123",
		Active:      true,
	}
}

// --- Tests ---

func TestRegistrationData_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(r *RegistrationData)
		wantField string
	}{
		{name: "valid", mutate: func(*RegistrationData) {}},
		{name: "blank first name", mutate: func(r *RegistrationData) { r.FirstName = "  " }, wantField: "first_name"},
		{name: "empty last name", mutate: func(r *RegistrationData) { r.LastName = "" }, wantField: "last_name"},
		{name: "email without at", mutate: func(r *RegistrationData) { r.Email = "invalid-email" }, wantField: "email"},
		{name: "email with space", mutate: func(r *RegistrationData) { r.Email = "john doe@example.com" }, wantField: "email"},
		{name: "empty phone", mutate: func(r *RegistrationData) { r.PhoneNumber = "" }, wantField: "phone_number"},
		{name: "nil address", mutate: func(r *RegistrationData) { r.Address = nil }, wantField: "address"},
		{name: "blank city", mutate: func(r *RegistrationData) { r.Address.City = " " }, wantField: "address.city"},
		{name: "blank zip", mutate: func(r *RegistrationData) { r.Address.ZipCode = "" }, wantField: "address.zip_code"},
		{name: "missing date of birth", mutate: func(r *RegistrationData) { r.DateOfBirth = time.Time{} }, wantField: "date_of_birth"},
		{name: "short password", mutate: func(r *RegistrationData) { r.Password = "123" }, wantField: "password"},
		{name: "password at minimum length", mutate: func(r *RegistrationData) { r.Password = "12345678" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data)

			err := data.Validate()

			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRegistration)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestService_Register(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)

	u, err := svc.Register(context.Background(), validData())

	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "John Doe", u.FullName())
	assert.Equal(t, "New York", u.Address.City)
	assert.True(t, u.Active)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.True(t, CheckPassword(u, "password123"))
	assert.False(t, CheckPassword(u, "wrong-password"))
	assert.Same(t, u, store.users["user-1"])
}

func TestService_RegisterInvalid(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	data := validData()
	data.Email = "nope"

	_, err := svc.Register(context.Background(), data)

	require.ErrorIs(t, err, ErrInvalidRegistration)
	assert.Empty(t, store.users)
}

func TestService_RegisterStoreError(t *testing.T) {
	store := newMockStore()
	store.createErr = errors.New("disk full")
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), validData())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create user")
}

func TestService_UpdateProfile(t *testing.T) {
	store := newMockStore()
	svc := newTestService(store)
	_, err := svc.Register(context.Background(), validData())
	require.NoError(t, err)

	data := validData()
	data.Email = "j.doe@example.org"
	data.Address.City = "Boston"

	u, err := svc.UpdateProfile(context.Background(), "user-1", data)

	require.NoError(t, err)
	assert.Equal(t, "j.doe@example.org", store.users["user-1"].Email)
	assert.Equal(t, "Boston", u.Address.City)
}

func TestService_UpdateProfileNotFound(t *testing.T) {
	svc := newTestService(newMockStore())

	_, err := svc.UpdateProfile(context.Background(), "missing", validData())

	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_UpdateProfileStoreErrors(t *testing.T) {
	store := newMockStore()
	store.getErr = errors.New("timeout")
	svc := newTestService(store)

	_, err := svc.UpdateProfile(context.Background(), "user-1", validData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get user")

	store = newMockStore()
	store.users["user-1"] = &User{ID: "user-1"}
	store.updateErr = errors.New("conflict")
	svc = newTestService(store)

	_, err = svc.UpdateProfile(context.Background(), "user-1", validData())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update user")
}

func TestAddress_String(t *testing.T) {
	assert.Equal(t, "123 Main St, New York, NY 10001, USA", validData().Address.String())
}
