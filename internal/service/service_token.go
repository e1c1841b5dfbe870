package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-engineer-hub/internal/config"
	"github.com/MKhiriev/go-engineer-hub/internal/utils"
	"github.com/MKhiriev/go-engineer-hub/models"
)

// tokenService signs access and refresh tokens with two independent HMAC
// secrets. All state is read-only after construction.
type tokenService struct {
	accessSecret   string
	accessDuration time.Duration

	refreshSecret   string
	refreshDuration time.Duration

	// issuer is the "iss" claim of every issued token. Tokens with a
	// different issuer are rejected.
	issuer string

	// now is the clock used for "iat"/"exp" and for expiry checks.
	now func() time.Time
}

// NewTokenService builds a TokenService from an explicit application config.
// Nothing is read from the process environment.
func NewTokenService(cfg config.App) TokenService {
	return &tokenService{
		accessSecret:    cfg.AccessTokenSecret,
		accessDuration:  cfg.AccessTokenDuration,
		refreshSecret:   cfg.RefreshTokenSecret,
		refreshDuration: cfg.RefreshTokenDuration,
		issuer:          cfg.TokenIssuer,
		now:             time.Now,
	}
}

// IssueAccessToken signs a short-lived token carrying the identity fields of
// user.
func (s *tokenService) IssueAccessToken(user models.User) (models.Token, error) {
	claims := models.Claims{
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
	claims.Subject = user.UserID
	claims.Issuer = s.issuer

	token, err := utils.GenerateJWTToken(claims, s.now(), s.accessDuration, s.accessSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: access token: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// IssueRefreshToken signs a long-lived token that only carries the user id.
func (s *tokenService) IssueRefreshToken(userID string) (models.Token, error) {
	var claims models.Claims
	claims.Subject = userID
	claims.Issuer = s.issuer

	token, err := utils.GenerateJWTToken(claims, s.now(), s.refreshDuration, s.refreshSecret)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: refresh token: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) VerifyAccessToken(token string) (models.Token, error) {
	return s.verify(token, s.accessSecret)
}

func (s *tokenService) VerifyRefreshToken(token string) (models.Token, error) {
	return s.verify(token, s.refreshSecret)
}

// verify normalises every validation failure (signature, expiry, issuer,
// algorithm, missing subject) to ErrInvalidToken.
func (s *tokenService) verify(token, secret string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, secret, s.issuer, s.now)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return parsed, nil
}

func (s *tokenService) AccessTokenDuration() time.Duration {
	return s.accessDuration
}

func (s *tokenService) RefreshTokenDuration() time.Duration {
	return s.refreshDuration
}
