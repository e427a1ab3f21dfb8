package service

import (
	"context"
	"testing"

	"github.com/voyago/api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{Name: "Someone", Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetAllUsersRequiresAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "a@test.com", entity.RoleClient)
	seedUser(t, repo, "b@test.com", entity.RoleClient)
	svc := NewUserService(repo)

	_, err := svc.GetAllUsers(context.Background(), nil)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	client := &entity.Identity{UserID: "user-1", Role: entity.RoleClient}
	_, err = svc.GetAllUsers(context.Background(), client)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	admin := &entity.Identity{UserID: "admin-1", Role: entity.RoleAdmin}
	users, err := svc.GetAllUsers(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGetUser(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "a@test.com", entity.RoleClient)
	svc := NewUserService(repo)

	identity := &entity.Identity{UserID: user.ID, Role: entity.RoleClient}
	got, err := svc.GetUser(context.Background(), identity, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.GetUser(context.Background(), nil, user.ID)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = svc.GetUser(context.Background(), identity, "missing")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestUpdateUserChangesNameOnly(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "a@test.com", entity.RoleClient)
	svc := NewUserService(repo)

	identity := &entity.Identity{UserID: user.ID, Role: entity.RoleClient}
	name := "Renamed"
	updated, err := svc.UpdateUser(context.Background(), identity, user.ID, &UpdateUserRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, user.Email, updated.Email)
	assert.Equal(t, user.Role, updated.Role)

	// Empty payload leaves everything untouched.
	same, err := svc.UpdateUser(context.Background(), identity, user.ID, &UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", same.Name)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "a@test.com", entity.RoleClient)
	svc := NewUserService(repo)

	client := &entity.Identity{UserID: user.ID, Role: entity.RoleClient}
	_, err := svc.DeleteUser(context.Background(), client, user.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	admin := &entity.Identity{UserID: "admin-1", Role: entity.RoleAdmin}
	deleted, err := svc.DeleteUser(context.Background(), admin, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)

	_, err = svc.DeleteUser(context.Background(), admin, user.ID)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
