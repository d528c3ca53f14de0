package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devlink/internal/service"
)

func TestUpdateProfileOverlaysOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)
	users := service.NewUserService(userRepo)

	resp, err := auth.Signup(ctx, signupInput("alice@test.com"))
	require.NoError(t, err)

	age := 30
	desc := "Backend developer"
	updated, err := users.UpdateProfile(ctx, resp.User.ID, service.UpdateProfileInput{
		Age:         &age,
		Description: &desc,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Age)
	assert.Equal(t, 30, *updated.Age)
	assert.Equal(t, "Backend developer", updated.Description)
	// Untouched fields keep their values.
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Equal(t, "alice@test.com", updated.Email)
	assert.Equal(t, resp.User.PasswordHash, updated.PasswordHash)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	ctx := context.Background()
	users := service.NewUserService(newFakeUserRepo())

	name := "Somebody"
	_, err := users.UpdateProfile(ctx, bson.NewObjectID(), service.UpdateProfileInput{FirstName: &name})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)
	users := service.NewUserService(userRepo)

	resp, err := auth.Signup(ctx, signupInput("alice@test.com"))
	require.NoError(t, err)

	err = users.ChangePassword(ctx, resp.User.ID, "wrong-old", "N3w!password")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	err = users.ChangePassword(ctx, resp.User.ID, "Str0ng!pass", "N3w!password")
	require.NoError(t, err)

	_, err = auth.Login(ctx, service.LoginInput{Email: "alice@test.com", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, service.ErrInvalidCreds)
	_, err = auth.Login(ctx, service.LoginInput{Email: "alice@test.com", Password: "N3w!password"})
	require.NoError(t, err)
}
