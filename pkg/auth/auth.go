package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// JWTKey signs and verifies access tokens. Issuance itself lives in the
// identity provider, the rent service only verifies.
var JWTKey = []byte(os.Getenv("JWT_KEY"))

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, username)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) (string, error) {
	username, ok := ctx.Value(userNameKey).(string)
	if !ok || username == "" {
		return "", errors.New("username is not resolved")
	}
	return username, nil
}

func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}
