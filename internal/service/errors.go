package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrWrongOldPassword    = errors.New("old password is incorrect")

	ErrInvalidToken        = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken = errors.New("refresh token is expired or invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrSelfFollow        = errors.New("users cannot follow themselves")
	ErrNothingToUpdate   = errors.New("nothing to update")
	ErrMediaUploadFailed = errors.New("media upload failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
