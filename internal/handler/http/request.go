package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-engineer-hub/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files managed by net/http.
const multipartMemory = 1 << 20

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func (h *Handler) limitBody(w http.ResponseWriter, r *http.Request) {
	if h.settings.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.settings.maxUploadSize)
	}
}

// decodeJSON reads a JSON body into dst.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	h.limitBody(w, r)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return bodyError(err)
	}
	return nil
}

// parseMultipart parses a multipart/form-data body. The caller releases the
// parsed form with r.MultipartForm.RemoveAll.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request) error {
	h.limitBody(w, r)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return bodyError(err)
	}
	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
}

func releaseMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}

// saveUpload copies the file sent under field into the upload directory.
// A missing file yields a nil upload and no error.
func (h *Handler) saveUpload(r *http.Request, field string) (*models.Upload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRequestBody, field, err)
	}
	defer file.Close()

	tmp, err := os.CreateTemp(h.settings.uploadDir, models.UploadFilePrefix+field+"-*"+filepath.Ext(header.Filename))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	_, copyErr := io.Copy(tmp, file)
	closeErr := tmp.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("%w: %w", ErrSavingUpload, err)
	}

	return &models.Upload{Path: tmp.Name(), Filename: header.Filename}, nil
}

// discardUploads removes temporary files of uploads that never reached the
// service layer.
func discardUploads(uploads ...*models.Upload) {
	for _, u := range uploads {
		if u != nil {
			_ = os.Remove(u.Path)
		}
	}
}

// optionalFormValue returns a pointer to the form value of key, or nil when
// the form does not carry the key at all.
func optionalFormValue(form map[string][]string, key string) *string {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// optionalFormJSON decodes the JSON-encoded form value of key into a new T.
func optionalFormJSON[T any](form map[string][]string, key string) (*T, error) {
	raw := optionalFormValue(form, key)
	if raw == nil {
		return nil, nil
	}

	var v T
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidRequestBody, key, err)
	}
	return &v, nil
}
