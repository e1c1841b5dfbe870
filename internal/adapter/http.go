package adapter

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/logger"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
)

// uploadResponse is the subset of the media host's upload answer we keep.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type cloudinaryUploader struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string

	now    func() time.Time
	logger *logger.Logger
}

// NewMediaUploader builds the media host client described by cfg.
//
// When cfg.CloudName is empty a disabled uploader is returned whose Upload
// always fails with [ErrUploaderDisabled]; registration without images keeps
// working in that mode. Returns an error if cfg.BaseURL cannot be parsed.
func NewMediaUploader(cfg config.Media, logger *logger.Logger) (MediaUploader, error) {
	if cfg.CloudName == "" {
		logger.Warn().Msg("media host is not configured, uploads are disabled")
		return disabledUploader{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid media base url: %w", err)
	}

	return &cloudinaryUploader{
		client:    utils.NewHTTPClient(baseURL, cfg.Timeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [MediaUploader] with a signed upload to
// POST /v1_1/{cloud}/auto/upload. The resource type is detected by the host,
// so images, PDFs and videos share one endpoint.
func (c *cloudinaryUploader) Upload(ctx context.Context, localPath, folder string) (string, error) {
	log := logger.FromContext(ctx)

	signed := map[string]string{"timestamp": strconv.FormatInt(c.now().Unix(), 10)}
	if folder != "" {
		signed["folder"] = folder
	}

	form := map[string]string{
		"api_key":   c.apiKey,
		"signature": signParams(signed, c.apiSecret),
	}
	for k, v := range signed {
		form[k] = v
	}

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFile("file", localPath).
		SetFormData(form).
		SetResult(&result).
		Post("/v1_1/" + url.PathEscape(c.cloudName) + "/auto/upload")
	if err != nil {
		log.Err(err).Str("file", filepath.Base(localPath)).Msg("media upload request failed")
		return "", fmt.Errorf("media upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("file", filepath.Base(localPath)).Msg("media host rejected upload")
		return "", err
	}
	if result.SecureURL == "" {
		return "", ErrEmptyUploadURL
	}

	log.Debug().Str("public_id", result.PublicID).Str("folder", folder).Msg("media uploaded")
	return result.SecureURL, nil
}

// signParams computes the media host request signature: the SHA-1 hex digest
// of the non-empty params sorted by name and joined as k=v pairs with "&",
// followed by the API secret.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v != "" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}

type disabledUploader struct{}

func (disabledUploader) Upload(context.Context, string, string) (string, error) {
	return "", ErrUploaderDisabled
}
