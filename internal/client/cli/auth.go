package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/session"
	"github.com/antab/antabcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// sessionExpired recognises the server's expiry signal. The API client has
// already wiped the stored credential at this point; the App only needs to
// drop back to the signed-out prompt and tell the user.
func (a *App) sessionExpired(err error) bool {
	if !errors.Is(err, common.ErrSessionExpired) {
		return false
	}
	a.userName = ""
	printlnFn("Session expired. Please sign in again.")
	return true
}

// Register prompts for the account fields and attempts to create a new
// account via the AuthService. Registration does not sign the user in.
//
// On success it prints "Success! You can now log in." and returns nil. The
// password byte slice is securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	fname, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lname, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	in := api.RegisterInput{Fname: fname, Lname: lname, Email: email, Phone: phone, Password: string(password)}
	if err := a.authService.Register(ctx, in); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and the remember flag and tries to
// authenticate. With remember set, the session is written to the durable
// scope and survives restarts; otherwise it lives only for this run.
//
// The password is securely wiped before returning. A failed login leaves
// any existing session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := getYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.SignIn(ctx, email, string(password), remember)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if user != nil {
		a.userName = user.FullName()
	} else {
		a.userName = email
	}
	log.Printf("Login successful")
	return nil
}

// Logout wipes the session from both persistence scopes and returns to the
// signed-out prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.SignOut(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the cached account summary without touching the network.
// When the token's claims decode, the session timestamps are shown too.
func (a *App) Whoami(ctx context.Context) error {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if u == nil {
		printlnFn("Not signed in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s <%s> [%s]", u.FullName(), u.Email, u.RoleLabel()))

	token, err := a.authService.Token(ctx)
	if err != nil || token == "" {
		return err
	}
	if info, err := session.InspectToken(token); err == nil {
		if !info.IssuedAt.IsZero() {
			printlnFn(fmt.Sprintf("Session issued:  %s", info.IssuedAt.Format(time.RFC1123)))
		}
		if !info.ExpiresAt.IsZero() {
			printlnFn(fmt.Sprintf("Session expires: %s", info.ExpiresAt.Format(time.RFC1123)))
		}
	}
	return nil
}
