// Package session owns the client's credential and cached profile record.
//
// The credential (an opaque bearer token) lives in exactly one of two
// persistence scopes: durable (a local SQLite database, survives restarts,
// chosen when the user asks to be remembered) or ephemeral (in-memory,
// gone when the process exits). Reads consult the durable scope first and
// fall back to the ephemeral one. Clearing always wipes both scopes, so no
// stale credential can survive sign-out or expiry even if a token ended up
// in both by error.
//
// Absence of a credential is the valid anonymous state, not a failure;
// callers render a signed-out view instead of retrying.
package session
