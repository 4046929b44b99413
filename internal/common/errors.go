package common

import "errors"

var (
	// ErrSessionExpired reports that the server rejected the credential as
	// expired. By the time callers see it, both persistence scopes have
	// already been cleared; the only valid reaction is returning the user
	// to the sign-in flow.
	ErrSessionExpired = errors.New("session expired")

	// ErrNetwork wraps transport-level failures. Its text is user-facing:
	// screens display it verbatim.
	ErrNetwork = errors.New("Network error")

	// ErrNotSignedIn is returned by operations that require a credential
	// when neither scope holds one. Absence of a credential is a valid
	// terminal state, not a fault; callers render a signed-out view.
	ErrNotSignedIn = errors.New("not signed in")
)
