package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/cleancode-kart/internal/domain/order"
	"github.com/xenking/cleancode-kart/internal/domain/user"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Get(ctx, "u1")
	require.ErrorIs(t, err, user.ErrNotFound)

	u := &user.User{ID: "u1", FirstName: "Jane"}
	require.NoError(t, repo.Create(ctx, u))
	require.Error(t, repo.Create(ctx, u))

	// Mutating the caller's copy does not leak into the store.
	u.FirstName = "Changed"
	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)

	got.FirstName = "Janet"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Janet", got.FirstName)

	require.ErrorIs(t, repo.Update(ctx, &user.User{ID: "u2"}), user.ErrNotFound)
}

func TestOrderLog(t *testing.T) {
	l := NewOrderLog()
	assert.Empty(t, l.IDs())

	l.OrderProcessed(context.Background(), order.New("ORD-1", nil))
	l.OrderProcessed(context.Background(), order.New("ORD-2", nil))

	ids := l.IDs()
	assert.Equal(t, []string{"ORD-1", "ORD-2"}, ids)

	ids[0] = "mutated"
	assert.Equal(t, "ORD-1", l.IDs()[0])
}
