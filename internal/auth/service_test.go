package auth_test

import (
	"context"
	"testing"

	"portfolio-api/internal/auth"
	"portfolio-api/internal/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *auth.Service {
	db := testdb.New(t, (*auth.User)(nil), (*auth.RefreshToken)(nil))
	return auth.NewService(auth.NewRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, auth.RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)
	require.NotNil(t, registered.User)
	assert.Equal(t, "admin@example.com", registered.User.Email)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := service.Register(ctx, auth.RegisterRequest{
			Name:     "Admin Again",
			Email:    "admin@example.com",
			Password: "another-pass",
		})
		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})

	t.Run("LoginWithCorrectPassword", func(t *testing.T) {
		resp, err := service.Login(ctx, auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		claims, err := auth.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.User.ID, claims.UserID)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("LoginWithWrongPassword", func(t *testing.T) {
		_, err := service.Login(ctx, auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("LoginUnknownEmail", func(t *testing.T) {
		_, err := service.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefreshAndLogout(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, auth.RegisterRequest{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	t.Run("RefreshIssuesNewPair", func(t *testing.T) {
		refreshed, err := service.RefreshAccessToken(ctx, registered.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
		assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)
	})

	t.Run("LogoutInvalidatesToken", func(t *testing.T) {
		resp, err := service.Login(ctx, auth.LoginRequest{
			Email:    "admin@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, resp.RefreshToken))

		_, err = service.RefreshAccessToken(ctx, resp.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})

	t.Run("UnknownRefreshToken", func(t *testing.T) {
		_, err := service.RefreshAccessToken(ctx, "never-issued")
		assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
	})
}
