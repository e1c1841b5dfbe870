package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by both access and refresh tokens.
//
// Refresh tokens only populate the embedded registered claims (the user id
// lives in "sub"); access tokens additionally carry the identity fields so
// that display data does not require a store lookup.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// UserID returns the identity encoded in the "sub" claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// Token wraps a signed JWT together with its decoded claims.
type Token struct {
	// Claims are the claims the token was signed with (or decoded from).
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Session is the result of a successful login.
type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
