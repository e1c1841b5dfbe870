package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/service"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// ---- service fakes ----

type fakeAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.Session, error)
	refreshFn        func(ctx context.Context, refreshToken string) (models.Token, error)
	logoutFn         func(ctx context.Context, userID string) error
	changePasswordFn func(ctx context.Context, userID string, req models.ChangePasswordRequest) error
	authenticateFn   func(ctx context.Context, accessToken string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Refresh(ctx context.Context, refreshToken string) (models.Token, error) {
	return f.refreshFn(ctx, refreshToken)
}

func (f *fakeAuthService) Logout(ctx context.Context, userID string) error {
	return f.logoutFn(ctx, userID)
}

func (f *fakeAuthService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) error {
	return f.changePasswordFn(ctx, userID, req)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, accessToken string) (models.User, error) {
	return f.authenticateFn(ctx, accessToken)
}

type fakeUserService struct {
	getProfileFn    func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn func(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	followFn        func(ctx context.Context, followerID, followeeID string) error
	unfollowFn      func(ctx context.Context, followerID, followeeID string) error
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return f.getProfileFn(ctx, userID)
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	return f.updateProfileFn(ctx, userID, req)
}

func (f *fakeUserService) Follow(ctx context.Context, followerID, followeeID string) error {
	return f.followFn(ctx, followerID, followeeID)
}

func (f *fakeUserService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	return f.unfollowFn(ctx, followerID, followeeID)
}

type fakePostService struct {
	createPostFn    func(ctx context.Context, req models.CreatePostRequest) (models.Post, error)
	getPostFn       func(ctx context.Context, postID string) (models.Post, error)
	listPostsFn     func(ctx context.Context) ([]models.Post, error)
	listUserPostsFn func(ctx context.Context, userID string) ([]models.Post, error)
	likePostFn      func(ctx context.Context, postID, userID string) (models.Post, error)
	commentFn       func(ctx context.Context, req models.CommentRequest) (models.Post, error)
	feedFn          func(ctx context.Context, userID string) ([]models.Post, error)
}

func (f *fakePostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	return f.createPostFn(ctx, req)
}

func (f *fakePostService) GetPost(ctx context.Context, postID string) (models.Post, error) {
	return f.getPostFn(ctx, postID)
}

func (f *fakePostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return f.listPostsFn(ctx)
}

func (f *fakePostService) ListUserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return f.listUserPostsFn(ctx, userID)
}

func (f *fakePostService) LikePost(ctx context.Context, postID, userID string) (models.Post, error) {
	return f.likePostFn(ctx, postID, userID)
}

func (f *fakePostService) CommentOnPost(ctx context.Context, req models.CommentRequest) (models.Post, error) {
	return f.commentFn(ctx, req)
}

func (f *fakePostService) Feed(ctx context.Context, userID string) ([]models.Post, error) {
	return f.feedFn(ctx, userID)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

// ---- helpers ----

const testAccessToken = "valid-access-token"

var alice = models.User{UserID: "alice-id", Username: "alice", Email: "alice@example.com", FullName: "Alice"}

func testConfig(t *testing.T) config.StructuredConfig {
	t.Helper()
	return config.StructuredConfig{
		App: config.App{
			AccessTokenSecret:    "access-secret",
			AccessTokenDuration:  time.Hour,
			RefreshTokenSecret:   "refresh-secret",
			RefreshTokenDuration: 240 * time.Hour,
			TokenIssuer:          "go-engineer-hub",
			Version:              "test",
		},
		Storage: config.Storage{Files: config.Files{UploadDir: t.TempDir()}},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
			MaxUploadSize:  1 << 20,
		},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, testConfig(t), logger.Nop())
}

// authAs returns an AuthService fake that accepts testAccessToken as user.
func authAs(user models.User) *fakeAuthService {
	return &fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.User, error) {
			if token != testAccessToken {
				return models.User{}, service.ErrInvalidToken
			}
			return user, nil
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// withUser makes r look like it passed the auth middleware.
func withUser(r *http.Request, user models.User) *http.Request {
	return injectNopLogger(r.WithContext(utils.WithUser(r.Context(), user)))
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// serve routes req through the full router.
func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
