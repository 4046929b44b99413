// Package cli provides the interactive Antab booking command-line client.
//
// It wires configuration, the local session database, the API services and an
// interactive REPL. Typical flow: restore a remembered session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Logout with an optional remembered session
//   - Profile view and edit
//   - Trip history
//   - Admin screens: bookings (with status changes), rooms (CRUD), users
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
