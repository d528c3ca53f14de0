package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink/internal/service"
)

const testSecret = "test-secret"

func newAuthService(userRepo *fakeUserRepo) *service.AuthService {
	return service.NewAuthService(userRepo, testSecret, 24*time.Hour)
}

func signupInput(email string) service.SignupInput {
	return service.SignupInput{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     email,
		Password:  "Str0ng!pass",
	}
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)

	resp, err := auth.Signup(ctx, signupInput("alice@test.com"))
	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.False(t, resp.User.ID.IsZero())
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEqual(t, "Str0ng!pass", resp.User.PasswordHash)

	login, err := auth.Login(ctx, service.LoginInput{Email: "alice@test.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	// The token subject resolves back to the user id.
	token, err := jwt.Parse(login.AccessToken, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID.Hex(), sub)
}

func TestSignupNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)

	resp, err := auth.Signup(ctx, signupInput("  Alice@Test.com "))
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", resp.User.Email)

	_, err = auth.Login(ctx, service.LoginInput{Email: "ALICE@test.com", Password: "Str0ng!pass"})
	require.NoError(t, err)
}

func TestSignupDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)

	_, err := auth.Signup(ctx, signupInput("alice@test.com"))
	require.NoError(t, err)

	_, err = auth.Signup(ctx, signupInput("alice@test.com"))
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	auth := newAuthService(userRepo)

	_, err := auth.Signup(ctx, signupInput("alice@test.com"))
	require.NoError(t, err)

	_, err = auth.Login(ctx, service.LoginInput{Email: "alice@test.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, service.ErrInvalidCreds)

	// Unknown email is indistinguishable from a wrong password.
	_, err = auth.Login(ctx, service.LoginInput{Email: "nobody@test.com", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, service.ErrInvalidCreds)
}
