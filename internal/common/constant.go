// Package common contains shared constants and sentinel errors used across
// the Antab client components.
package common

const (
	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix is prepended to the token in the Authorization header.
	BearerPrefix = "Bearer "

	// RequestIDHeader carries a per-request correlation id for server logs.
	RequestIDHeader = "X-Request-Id"

	// ExpiredTokenMarker is the substring of the server's 401 message that
	// identifies an expired credential. Matching on the message text mirrors
	// what the backend actually sends; there is no structured error code.
	ExpiredTokenMarker = "jwt expired"
)

const (
	// TokenKey and UserKey are the storage keys under which each persistence
	// scope keeps the credential and the cached profile record.
	TokenKey = "token"
	UserKey  = "user"
)
