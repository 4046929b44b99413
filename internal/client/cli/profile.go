package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// Profile shows the profile screen: the cached record overlaid with a fresh
// GET /me. A failed fetch still renders the cached fields alongside the
// error, so the user sees the last known data.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.profileService.Load(ctx)
	if a.sessionExpired(err) {
		return err
	}
	if err != nil {
		log.Printf("error: %v", err)
	}
	if u == nil {
		printlnFn("No profile data.")
		return err
	}

	printlnFn(fmt.Sprintf("Name:  %s", u.FullName()))
	printlnFn(fmt.Sprintf("Email: %s", u.Email))
	printlnFn(fmt.Sprintf("Phone: %s", u.Phone))
	printlnFn(fmt.Sprintf("Role:  %s", u.RoleLabel()))
	return err
}

// EditProfile prompts for the editable fields and saves them. An empty
// answer keeps the current value, so the user only types what changes.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.authService.CurrentUser(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if current == nil {
		printlnFn("Please log in first.")
		return nil
	}

	fname, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", current.Fname), os.Stdout)
	if err != nil {
		return err
	}
	lname, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", current.Lname), os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", current.Phone), os.Stdout)
	if err != nil {
		return err
	}

	if fname == "" {
		fname = current.Fname
	}
	if lname == "" {
		lname = current.Lname
	}
	if phone == "" {
		phone = current.Phone
	}

	u, err := a.profileService.Save(ctx, fname, lname, phone)
	if a.sessionExpired(err) {
		return err
	}
	if err != nil {
		log.Printf("Profile update unsuccessful: %s", err.Error())
		return err
	}

	if u != nil {
		a.userName = u.FullName()
	}
	fmt.Println("Profile updated.")
	return nil
}
