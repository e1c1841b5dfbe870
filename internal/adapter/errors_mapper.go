package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// hostError is the error envelope of the media host API.
type hostError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var envelope hostError
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		body = envelope.Error.Message
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return fmt.Errorf("%w: http %d: %s", ErrUploadRejected, resp.StatusCode(), body)
}
