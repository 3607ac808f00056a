package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseapi/internal/app/repositories/repotest"
	"github.com/yigit/courseapi/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	store := repotest.NewMemoryStore()

	require.NoError(t, CreateDefaultData(ctx, store, store, bcrypt.MinCost, zerolog.Nop()))

	count, err := store.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(demoData)), count)

	joe, err := store.GetUserByEmail(ctx, "joe@smith.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(joe.Password, DemoPassword))

	courses, err := store.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, joe.ID, courses[0].UserID)
	require.NotNil(t, courses[0].EstimatedTime)
	assert.Nil(t, courses[1].EstimatedTime)

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, CreateDefaultData(ctx, store, store, bcrypt.MinCost, zerolog.Nop()))
		courses, err := store.GetAllCourses(ctx)
		require.NoError(t, err)
		assert.Len(t, courses, 2)
	})
}

func TestCreateDefaultDataStoreFailure(t *testing.T) {
	store := repotest.NewMemoryStore()
	store.Err = errors.New("db down")

	err := CreateDefaultData(context.Background(), store, store, bcrypt.MinCost, zerolog.Nop())
	assert.ErrorIs(t, err, store.Err)
}
