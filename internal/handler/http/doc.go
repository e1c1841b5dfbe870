// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Authentication, request tracing, access logging and response
// compression are handled in this package before requests are delegated to
// the service layer. Session tokens travel in the accessToken and
// refreshToken cookies, with a bearer "Authorization" header accepted as a
// fallback for the access token.
package http
