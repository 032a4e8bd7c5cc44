package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookify/rent-service/pkg/auth"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()

	ctx := auth.SetAuthContext(context.Background(), "alice", auth.RoleUser)

	username, err := auth.UserName(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
	require.Equal(t, auth.RoleUser, auth.UserRole(ctx))

	_, err = auth.UserName(context.Background())
	require.Error(t, err)
	require.Empty(t, auth.UserRole(context.Background()))
}
