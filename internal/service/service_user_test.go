package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-engineer-hub/internal/adapter"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/mock"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository, *mock.MockMediaUploader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	media := mock.NewMockMediaUploader(ctrl)
	return NewUserService(repo, media, logger.Nop()), repo, media
}

func strPtr(s string) *string { return &s }

func TestUserService_GetProfile(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	repo.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{UserID: "u1"}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), "u2").Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)

	_, err = svc.GetProfile(context.Background(), "u2")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_UpdateProfile_NormalisesUsername(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	repo.EXPECT().UpdateProfile(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
			require.NotNil(t, req.Username)
			assert.Equal(t, "newname", *req.Username)
			assert.Equal(t, "New Name", *req.FullName)
			assert.Nil(t, req.ResumeURL)
			return models.User{UserID: "u1", Username: *req.Username}, nil
		},
	)

	user, err := svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{
		Username: strPtr(" NewName "),
		FullName: strPtr(" New Name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "newname", user.Username)
}

func TestUserService_UpdateProfile_TrimsTextFields(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	repo.EXPECT().UpdateProfile(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
			require.NotNil(t, req.Bio)
			require.NotNil(t, req.Location)
			require.NotNil(t, req.Website)
			assert.Equal(t, "Gopher", *req.Bio)
			assert.Equal(t, "Berlin", *req.Location)
			assert.Equal(t, "https://example.com", *req.Website)
			assert.Nil(t, req.FullName)
			return models.User{UserID: "u1", Bio: *req.Bio}, nil
		},
	)

	_, err := svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{
		Bio:      strPtr("  Gopher\n"),
		Location: strPtr(" Berlin "),
		Website:  strPtr("\thttps://example.com "),
	})
	require.NoError(t, err)
}

func TestUserService_UpdateProfile_UploadsResume(t *testing.T) {
	svc, repo, media := newTestUserSvc(t)
	resume := tempUpload(t, "cv.pdf")

	gomock.InOrder(
		media.EXPECT().Upload(gomock.Any(), resume.Path, adapter.FolderResumes).Return("https://cdn/cv.pdf", nil),
		repo.EXPECT().UpdateProfile(gomock.Any(), "u1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
				require.NotNil(t, req.ResumeURL)
				assert.Equal(t, "https://cdn/cv.pdf", *req.ResumeURL)
				assert.Nil(t, req.Resume)
				return models.User{UserID: "u1", Resume: *req.ResumeURL}, nil
			},
		),
	)

	user, err := svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{Resume: resume})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/cv.pdf", user.Resume)
	requireRemoved(t, resume)
}

func TestUserService_UpdateProfile_ResumeUploadFails(t *testing.T) {
	svc, _, media := newTestUserSvc(t)
	resume := tempUpload(t, "cv.pdf")

	media.EXPECT().Upload(gomock.Any(), resume.Path, adapter.FolderResumes).Return("", adapter.ErrUploaderDisabled)

	_, err := svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{Resume: resume, Bio: strPtr("x")})
	assert.ErrorIs(t, err, ErrMediaUploadFailed)
	assert.ErrorIs(t, err, adapter.ErrUploaderDisabled)
	requireRemoved(t, resume)
}

func TestUserService_UpdateProfile_Errors(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)

	_, err := svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrNothingToUpdate)

	repo.EXPECT().UpdateProfile(gomock.Any(), "u1", gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err = svc.UpdateProfile(context.Background(), "u1", models.UpdateProfileRequest{Username: strPtr("bob")})
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUserService_Follow(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().Follow(ctx, "bob", "alice").Return(nil).Times(2)
	repo.EXPECT().Follow(ctx, "bob", "ghost").Return(store.ErrNoUserWasFound)

	require.NoError(t, svc.Follow(ctx, "bob", "alice"))
	require.NoError(t, svc.Follow(ctx, "bob", "alice"))

	assert.ErrorIs(t, svc.Follow(ctx, "bob", "ghost"), store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.Follow(ctx, "bob", "bob"), ErrSelfFollow)
}

func TestUserService_Unfollow(t *testing.T) {
	svc, repo, _ := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().Unfollow(ctx, "bob", "alice").Return(nil)

	require.NoError(t, svc.Unfollow(ctx, "bob", "alice"))
	assert.ErrorIs(t, svc.Unfollow(ctx, "bob", "bob"), ErrSelfFollow)
}
