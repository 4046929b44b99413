package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Trips(ctx context.Context) error
	Bookings(ctx context.Context) error
	SetStatus(ctx context.Context) error
	Rooms(ctx context.Context) error
	AddRoom(ctx context.Context) error
	EditRoom(ctx context.Context) error
	DelRoom(ctx context.Context) error
	Users(ctx context.Context) error
	Reload(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Antab CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - trips          — show the booking history
//	  - profile        — show the profile
//	  - edit           — edit the profile
//	  - whoami         — show the cached account summary
//	  - bookings       — admin: list all bookings
//	  - setstatus      — admin: change a booking's status
//	  - rooms          — admin: list rooms
//	  - addroom        — admin: create a room
//	  - editroom       — admin: edit a room
//	  - delroom        — admin: delete a room
//	  - users          — admin: list accounts
//	  - reload         — admin: refetch the loaded collections
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("antab> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: trips, profile, edit, whoami, bookings, setstatus, rooms, addroom, editroom, delroom, users, reload, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "t", "trips":
			_ = a.Trips(ctx)

		case "bookings":
			_ = a.Bookings(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx)

		case "rooms":
			_ = a.Rooms(ctx)

		case "addroom":
			_ = a.AddRoom(ctx)

		case "editroom":
			_ = a.EditRoom(ctx)

		case "delroom":
			_ = a.DelRoom(ctx)

		case "users":
			_ = a.Users(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
