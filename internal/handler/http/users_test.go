package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/MKhiriev/go-engineer-hub/internal/store"
	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testAccessToken)
	return req
}

func TestCurrentUser(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: authAs(alice)})

	rr := serve(h, authorized(httptest.NewRequest(http.MethodGet, "/api/users/me", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, alice.UserID, got.UserID)
	assert.Equal(t, alice.Username, got.Username)
}

func TestViewProfile(t *testing.T) {
	users := &fakeUserService{
		getProfileFn: func(_ context.Context, userID string) (models.User, error) {
			if userID != alice.UserID {
				return models.User{}, store.ErrNoUserWasFound
			}
			return alice, nil
		},
	}
	h := newTestHandler(t, &service.Services{UserService: users})

	t.Run("found without authentication", func(t *testing.T) {
		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/users/alice-id", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"username":"alice"`)
	})

	t.Run("missing", func(t *testing.T) {
		rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/users/nobody", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("JSON partial update", func(t *testing.T) {
		users := &fakeUserService{
			updateProfileFn: func(_ context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
				assert.Equal(t, alice.UserID, userID)
				require.NotNil(t, req.Bio)
				assert.Equal(t, "hi", *req.Bio)
				require.NotNil(t, req.Skills)
				assert.Equal(t, models.StringList{"go", "sql"}, *req.Skills)
				assert.Nil(t, req.Username)
				assert.Nil(t, req.Resume)

				updated := alice
				updated.Bio = *req.Bio
				return updated, nil
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

		rr := serve(h, authorized(jsonRequest(http.MethodPatch, "/api/users/profile", `{"bio":"hi","skills":["go","sql"]}`)))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"bio":"hi"`)
	})

	t.Run("date-only and RFC 3339 dates", func(t *testing.T) {
		users := &fakeUserService{
			updateProfileFn: func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
				require.NotNil(t, req.Experience)
				require.Len(t, *req.Experience, 1)
				exp := (*req.Experience)[0]
				assert.Equal(t, models.NewDate(2020, time.January, 1), exp.StartDate)
				assert.Equal(t, models.NewDate(2022, time.June, 30), exp.EndDate)

				require.NotNil(t, req.Education)
				require.Len(t, *req.Education, 1)
				assert.Equal(t, "CS", (*req.Education)[0].FieldOfStudy)
				assert.Equal(t, models.NewDate(2014, time.September, 1), (*req.Education)[0].StartDate)
				return alice, nil
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

		body := `{
			"experience":[{"title":"Engineer","company":"Acme","startDate":"2020-01-01","endDate":"2022-06-30T00:00:00Z"}],
			"education":[{"school":"TU","fieldOfStudy":"CS","startDate":"2014-09-01"}]
		}`
		rr := serve(h, authorized(jsonRequest(http.MethodPatch, "/api/users/profile", body)))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: &fakeUserService{}})

		rr := serve(h, authorized(jsonRequest(http.MethodPatch, "/api/users/profile",
			`{"experience":[{"startDate":"01/02/2020"}]}`)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("profile read back is accepted as an update", func(t *testing.T) {
		profile := alice
		profile.FullName = "Alice B"
		profile.Bio = "gopher"
		profile.Experience = models.Experiences{{
			Title:     "Engineer",
			StartDate: models.NewDate(2020, time.January, 1),
		}}
		profile.Education = models.Educations{{School: "TU", FieldOfStudy: "CS"}}

		var got models.UpdateProfileRequest
		users := &fakeUserService{
			getProfileFn: func(context.Context, string) (models.User, error) {
				return profile, nil
			},
			updateProfileFn: func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
				got = req
				return profile, nil
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

		read := serve(h, httptest.NewRequest(http.MethodGet, "/api/users/"+alice.UserID, nil))
		require.Equal(t, http.StatusOK, read.Code)
		assert.Contains(t, read.Body.String(), `"fullName":"Alice B"`)
		assert.Contains(t, read.Body.String(), `"fieldOfStudy":"CS"`)

		rr := serve(h, authorized(jsonRequest(http.MethodPatch, "/api/users/profile", read.Body.String())))
		require.Equal(t, http.StatusOK, rr.Code)

		require.False(t, got.IsEmpty())
		require.NotNil(t, got.FullName)
		assert.Equal(t, "Alice B", *got.FullName)
		require.NotNil(t, got.Bio)
		assert.Equal(t, "gopher", *got.Bio)
		require.NotNil(t, got.Experience)
		assert.Equal(t, profile.Experience, *got.Experience)
		require.NotNil(t, got.Education)
		assert.Equal(t, profile.Education, *got.Education)
	})

	t.Run("multipart with resume", func(t *testing.T) {
		users := &fakeUserService{
			updateProfileFn: func(_ context.Context, _ string, req models.UpdateProfileRequest) (models.User, error) {
				require.NotNil(t, req.Location)
				assert.Equal(t, "Berlin", *req.Location)
				require.NotNil(t, req.Projects)
				require.Len(t, *req.Projects, 1)
				assert.Equal(t, "hub", (*req.Projects)[0].Name)
				assert.Nil(t, req.Bio)

				require.NotNil(t, req.Resume)
				content, err := os.ReadFile(req.Resume.Path)
				require.NoError(t, err)
				assert.Equal(t, "cv", string(content))
				return alice, nil
			},
		}
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

		req := multipartRequest(t, http.MethodPatch, "/api/users/profile",
			map[string]string{"location": "Berlin", "projects": `[{"name":"hub"}]`},
			map[string]string{"resume": "cv"})
		rr := serve(h, authorized(req))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("multipart with malformed list", func(t *testing.T) {
		h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: &fakeUserService{}})

		req := multipartRequest(t, http.MethodPatch, "/api/users/profile",
			map[string]string{"skills": "go, sql"}, nil)
		rr := serve(h, authorized(req))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nothing to update", service.ErrNothingToUpdate, http.StatusBadRequest},
		{"username taken", store.ErrUserAlreadyExists, http.StatusConflict},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			users := &fakeUserService{
				updateProfileFn: func(_ context.Context, _ string, _ models.UpdateProfileRequest) (models.User, error) {
					return models.User{}, tc.err
				},
			}
			h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

			rr := serve(h, authorized(jsonRequest(http.MethodPatch, "/api/users/profile", `{}`)))

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestFollowAndUnfollow(t *testing.T) {
	var calls []string
	users := &fakeUserService{
		followFn: func(_ context.Context, followerID, followeeID string) error {
			if followerID == followeeID {
				return service.ErrSelfFollow
			}
			if followeeID == "ghost" {
				return store.ErrNoUserWasFound
			}
			calls = append(calls, "follow "+followeeID)
			return nil
		},
		unfollowFn: func(_ context.Context, followerID, followeeID string) error {
			if followerID == followeeID {
				return service.ErrSelfFollow
			}
			calls = append(calls, "unfollow "+followeeID)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: authAs(alice), UserService: users})

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"follow", http.MethodPost, "/api/users/bob-id/follow", http.StatusOK},
		{"follow self", http.MethodPost, "/api/users/alice-id/follow", http.StatusBadRequest},
		{"follow unknown", http.MethodPost, "/api/users/ghost/follow", http.StatusNotFound},
		{"unfollow", http.MethodDelete, "/api/users/bob-id/follow", http.StatusOK},
		{"unfollow self", http.MethodDelete, "/api/users/alice-id/follow", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h, authorized(httptest.NewRequest(tt.method, tt.target, nil)))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}

	assert.Equal(t, []string{"follow bob-id", "unfollow bob-id"}, calls)
}
