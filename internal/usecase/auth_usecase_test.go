package usecase

import (
	"context"
	"testing"

	"github.com/FkReMy/hospital-bed-system-sub001/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestIdentityForLeavesUserUntouched(t *testing.T) {
	user := &entity.User{
		ID:                 "u1",
		Email:              "nurse@example.com",
		Role:               entity.RoleNurse,
		Roles:              []entity.Role{entity.RoleNurse, entity.RoleReception},
		MustChangePassword: true,
	}

	identity := identityFor(user, user.Role)
	require.True(t, identity.MustChangePassword)
	require.Equal(t, []string{"nurse", "reception"}, identity.Roles)

	// The user object may be shared through the query cache; clearing the
	// flag on the identity must not write through to it.
	identity.MustChangePassword = false
	identity.Roles[0] = "changed"
	require.True(t, user.MustChangePassword)
	require.Equal(t, entity.RoleNurse, user.Roles[0])
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	userRepo := &fakeUserRepo{users: map[string]entity.User{
		"d1": {ID: "d1", FullName: "Dr. Young", Role: entity.RoleDoctor},
		"d2": {ID: "d2", FullName: "Dr. Adams", Role: entity.RoleDoctor},
		"n1": {ID: "n1", FullName: "Nina", Role: entity.RoleNurse},
	}}
	usecase := NewAuthUsecase(testLogger(), nil, userRepo, nil, nil)

	t.Run("empty role returns everyone", func(t *testing.T) {
		users, err := usecase.ListUsers(ctx, "")
		require.NoError(t, err)
		require.Len(t, users, 3)
	})

	t.Run("role narrows to doctors", func(t *testing.T) {
		users, err := usecase.ListUsers(ctx, entity.RoleDoctor)
		require.NoError(t, err)
		require.Len(t, users, 2)
		for _, user := range users {
			require.Equal(t, entity.RoleDoctor, user.Role)
		}
	})
}
