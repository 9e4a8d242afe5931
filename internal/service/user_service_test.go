package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizarena/internal/apperr"
	"quizarena/internal/store"
)

func TestUserServiceRegister(t *testing.T) {
	users := NewUserService(store.NewUserStore(), 4)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		user, err := users.Register(ctx, RegisterInput{
			Username:  "marie",
			Email:     "marie@example.fr",
			Password:  "secret42",
			FirstName: "Marie",
			LastName:  "Curie",
		})
		require.NoError(t, err)
		assert.Equal(t, "marie", user.Username)
		assert.Equal(t, "user", user.Role)
		assert.Zero(t, user.Points)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "secret42", user.PasswordHash)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterInput{
			Username: "marie2",
			Email:    "MARIE@example.fr",
			Password: "secret42",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterInput{
			Username: "marie",
			Email:    "autre@example.fr",
			Password: "secret42",
		})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterInput{Username: "x"})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, err := users.Register(ctx, RegisterInput{
			Username: "pierre",
			Email:    "pierre@example.fr",
			Password: "abc",
		})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	users := NewUserService(store.NewUserStore(), 4)
	ctx := context.Background()

	_, err := users.Register(ctx, RegisterInput{
		Username: "paul",
		Email:    "paul@example.fr",
		Password: "motdepasse",
	})
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		user, err := users.Authenticate(ctx, "paul@example.fr", "motdepasse")
		require.NoError(t, err)
		assert.Equal(t, "paul", user.Username)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := users.Authenticate(ctx, "paul@example.fr", "mauvais")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := users.Authenticate(ctx, "inconnu@example.fr", "motdepasse")
		assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
	})
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	users := NewUserService(store.NewUserStore(), 4)
	ctx := context.Background()

	first, err := users.EnsureAdmin(ctx, "admin", "admin@quizarena.fr", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, "admin", first.Role)

	second, err := users.EnsureAdmin(ctx, "admin", "admin@quizarena.fr", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}
