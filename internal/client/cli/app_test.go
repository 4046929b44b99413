package cli

import (
	"bytes"
	"log"
	"testing"
)

func TestIsLoggedIn(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false with no user name")
	}
	app.userName = "Alice Smith"
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a user name")
	}
}

func TestGetStatus(t *testing.T) {
	app := &App{}
	if got := app.getStatus(); got != "" {
		t.Fatalf("empty app should have empty status, got %q", got)
	}

	app.userName = "Alice Smith"
	app.Mode = ModeOnline
	if got := app.getStatus(); got != "(Alice Smith online)" {
		t.Fatalf("status mismatch: %q", got)
	}

	app.userName = ""
	if got := app.getStatus(); got != "(online)" {
		t.Fatalf("status mismatch: %q", got)
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to remain %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change to offline, got empty")
	}
}
