package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is malformed")
	ErrEmptyFullName    = errors.New("full name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyOldPassword = errors.New("old password is required")
	ErrEmptyNewPassword = errors.New("new password is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidPostID   = errors.New("invalid post ID")
	ErrEmptyPost       = errors.New("post must have text or a file")
	ErrEmptyComment    = errors.New("comment content is required")
	ErrEmptyProfileKey = errors.New("profile field cannot be blank")
)
