// Package config assembles the server configuration of go-engineer-hub.
//
// Values come from environment variables, then command-line flags, then an
// optional JSON file named by CONFIG or -c. A field set by an earlier source
// is never overridden by a later one. Defaults fill whatever is still empty
// and the result is validated before [GetStructuredConfig] returns it.
package config
