package adapter

import "errors"

var (
	// ErrUploadRejected is returned when the media host answers with a non-2xx status.
	ErrUploadRejected = errors.New("media host rejected the upload")

	// ErrUploaderDisabled is returned by the uploader when no media host is configured.
	ErrUploaderDisabled = errors.New("media uploader is disabled")

	// ErrEmptyUploadURL is returned when the media host accepted the file but sent no URL back.
	ErrEmptyUploadURL = errors.New("media host returned no url")
)
