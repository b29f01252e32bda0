package auth

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestExtractClaims(t *testing.T) {
	t.Parallel()

	token := signToken(t, &Claims{
		UserType: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "oliver",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	claims, err := ExtractClaims(token)
	require.NoError(t, err)
	require.Equal(t, "oliver", claims.Subject)
	require.Equal(t, RoleAdmin, claims.UserType)
}

func TestExtractClaims_NoSubject(t *testing.T) {
	t.Parallel()

	token := signToken(t, &Claims{UserType: "user"})

	_, err := ExtractClaims(token)
	require.ErrorIs(t, err, ErrMissingIdentity)
}

func TestExtractClaims_Garbage(t *testing.T) {
	t.Parallel()

	_, err := ExtractClaims("not-a-token")
	require.Error(t, err)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()

	ctx := SetAuthContext(context.Background(), "oliver", "user")

	userName, err := GetUserName(ctx)
	require.NoError(t, err)
	require.Equal(t, "oliver", userName)
	require.False(t, IsAdmin(ctx))

	require.True(t, IsAdmin(SetAuthContext(context.Background(), "librarian", RoleAdmin)))

	_, err = GetUserName(context.Background())
	require.ErrorIs(t, err, ErrNoAuthContext)
}
