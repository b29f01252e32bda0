package auth

import (
	"context"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	RoleAdmin = "admin"

	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

var (
	ErrMissingIdentity = errors.New("token has no subject claim")
	ErrNoAuthContext   = errors.New("no auth in context")
)

// Claims is the payload shape the lending service cares about. The token
// is issued and verified upstream; here it is only decoded.
type Claims struct {
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

// ExtractClaims decodes the payload of an already-trusted bearer token.
// Signature verification is the gateway's job, not ours.
func ExtractClaims(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse token payload")
	}
	if claims.Subject == "" {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}

type contextKey int

const (
	userNameKey contextKey = iota + 1
	userRoleKey
)

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func GetUserName(ctx context.Context) (string, error) {
	userName, ok := ctx.Value(userNameKey).(string)
	if !ok || userName == "" {
		return "", ErrNoAuthContext
	}
	return userName, nil
}

func GetRole(ctx context.Context) (string, error) {
	role, ok := ctx.Value(userRoleKey).(string)
	if !ok {
		return "", ErrNoAuthContext
	}
	return role, nil
}

func IsAdmin(ctx context.Context) bool {
	role, err := GetRole(ctx)
	return err == nil && role == RoleAdmin
}
