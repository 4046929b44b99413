// Package api talks to the Antab booking backend over HTTP/JSON.
//
// Every outbound request carries the current credential from the session
// store when one exists; requests without a credential still go out and let
// the server decide. Response handling is centralized: transport failures
// become common.ErrNetwork, a 401 carrying the expired-token marker tears
// down the session in both scopes and becomes common.ErrSessionExpired
// (callers never see such a response as data), and any other non-2xx status
// becomes an *Error with the server-supplied message. Successful payloads
// are decoded as-is; screens stay responsible for defensive field access.
package api
