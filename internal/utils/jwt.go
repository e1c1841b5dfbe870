package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-engineer-hub/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// The caller provides the subject, the issuer and any private claims; the
// function stamps a fresh token ID (jti), IssuedAt = issuedAt and
// ExpiresAt = issuedAt + tokenDuration.
//
// Returns an error when the subject, issuer or signing key is empty, when
// tokenDuration is not positive, or when signing fails.
//
//	token, err := utils.GenerateJWTToken(models.Claims{
//	    RegisteredClaims: jwt.RegisteredClaims{Subject: user.UserID, Issuer: "hub"},
//	}, time.Now(), time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if claims.Subject == "" || claims.Issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims.ID = uuid.NewString()
	claims.IssuedAt = jwt.NewNumericDate(issuedAt)
	claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(tokenDuration))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - the signing method is HS256 and the signature matches tokenSignKey;
//   - the iss claim equals tokenIssuer;
//   - the exp claim is present and lies after now();
//   - the sub claim is non-empty.
//
// now supplies the reference time; pass time.Now outside tests.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
