package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/mock"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCredentialStore(t *testing.T) (CredentialStore, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewCredentialStore(repo, logger.Nop()), repo
}

func TestCredentialStore_CreateUser_NormalisesAndHashes(t *testing.T) {
	cs, repo := newTestCredentialStore(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "alice@example.com", u.Email)
			assert.Equal(t, "Alice Doe", u.FullName)
			assert.True(t, strings.HasPrefix(u.PasswordHash, "$2a$10$"))
			assert.NotContains(t, u.PasswordHash, "secret")

			ok, err := utils.ComparePassword(u.PasswordHash, "secret")
			require.NoError(t, err)
			assert.True(t, ok)

			u.UserID = "u1"
			return u, nil
		},
	)

	user, err := cs.CreateUser(ctx, models.User{
		Username: "  Alice ",
		Email:    " ALICE@Example.com",
		FullName: " Alice Doe ",
	}, "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestCredentialStore_CreateUser_Conflict(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := cs.CreateUser(context.Background(), models.User{Username: "alice", Email: "a@b.c"}, "secret")
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestCredentialStore_CreateUser_PasswordTooLong(t *testing.T) {
	cs, _ := newTestCredentialStore(t)

	_, err := cs.CreateUser(context.Background(), models.User{Username: "alice"}, strings.Repeat("x", 100))
	assert.Error(t, err)
}

func TestCredentialStore_FindByEmail_Normalises(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	repo.EXPECT().FindUserByEmail(gomock.Any(), "bob@example.com").Return(models.User{UserID: "u2"}, nil)

	user, err := cs.FindByEmail(context.Background(), " Bob@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "u2", user.UserID)
}

func TestCredentialStore_FindByID_NotFound(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "missing").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := cs.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCredentialStore_VerifyPassword(t *testing.T) {
	cs, _ := newTestCredentialStore(t)
	user := userWithPassword(t, "u1", "correct")

	ok, err := cs.VerifyPassword(user, "correct")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cs.VerifyPassword(user, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cs.VerifyPassword(models.User{PasswordHash: "not-a-bcrypt-hash"}, "x")
	assert.Error(t, err)
}

func TestCredentialStore_SetPassword(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	repo.EXPECT().UpdatePassword(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, hash string) error {
			ok, err := utils.ComparePassword(hash, "new-password")
			require.NoError(t, err)
			assert.True(t, ok)
			return nil
		},
	)

	require.NoError(t, cs.SetPassword(context.Background(), "u1", "new-password"))
}

func TestCredentialStore_SetPassword_RepositoryError(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	repo.EXPECT().UpdatePassword(gomock.Any(), "u1", gomock.Any()).Return(store.ErrNoUserWasFound)

	err := cs.SetPassword(context.Background(), "u1", "new-password")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestCredentialStore_SetRefreshToken(t *testing.T) {
	cs, repo := newTestCredentialStore(t)

	gomock.InOrder(
		repo.EXPECT().SetRefreshToken(gomock.Any(), "u1", "token").Return(nil),
		repo.EXPECT().SetRefreshToken(gomock.Any(), "u1", "").Return(errors.New("db down")),
	)

	require.NoError(t, cs.SetRefreshToken(context.Background(), "u1", "token"))
	assert.Error(t, cs.SetRefreshToken(context.Background(), "u1", ""))
}
