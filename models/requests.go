package models

// UploadFilePrefix starts the name of every temporary upload file.
const UploadFilePrefix = "hub-upload-"

// Upload describes a file received from the client and saved to a local
// temporary path. Whoever consumes the upload removes the file.
type Upload struct {
	// Path is the location of the temporary file on local disk.
	Path string `json:"-"`

	// Filename is the original client-side file name.
	Filename string `json:"-"`
}

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`

	// Avatar and CoverImage are optional uploads.
	Avatar     *Upload `json:"-"`
	CoverImage *Upload `json:"-"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token sent in the body instead of a cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshResponse is returned by a successful token refresh.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// ChangePasswordRequest carries the current and the new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateProfileRequest is a partial profile update: only non-nil fields are
// written.
type UpdateProfileRequest struct {
	Username   *string      `json:"username,omitempty"`
	FullName   *string      `json:"fullName,omitempty"`
	Skills     *StringList  `json:"skills,omitempty"`
	Experience *Experiences `json:"experience,omitempty"`
	Education  *Educations  `json:"education,omitempty"`
	Projects   *Projects    `json:"projects,omitempty"`
	Bio        *string      `json:"bio,omitempty"`
	Location   *string      `json:"location,omitempty"`
	Website    *string      `json:"website,omitempty"`

	// Resume is an optional uploaded document; its URL replaces the
	// profile's resume reference.
	Resume *Upload `json:"-"`

	// ResumeURL is set by the service after Resume has been uploaded.
	ResumeURL *string `json:"-"`
}

// IsEmpty reports whether the request carries no change at all.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Username == nil && r.FullName == nil && r.Skills == nil &&
		r.Experience == nil && r.Education == nil && r.Projects == nil &&
		r.Bio == nil && r.Location == nil && r.Website == nil &&
		r.Resume == nil && r.ResumeURL == nil
}

// CreatePostRequest carries a new post.
type CreatePostRequest struct {
	// UserID is the author, taken from the authenticated identity.
	UserID string `json:"-"`

	Text string `json:"text"`

	// Media is the optional uploaded file.
	Media *Upload `json:"-"`

	// FileURL is set by the service after Media has been uploaded.
	FileURL string `json:"-"`
}

// CommentRequest carries a new comment.
type CommentRequest struct {
	PostID  string `json:"-"`
	UserID  string `json:"-"`
	Content string `json:"content"`
}
