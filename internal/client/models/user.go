// Package models defines client-side data models mirroring the booking API's
// JSON payloads. Fields the server may omit keep their zero value; screens
// substitute display defaults instead of failing.
package models

import "strings"

// User is the profile record as served by GET /me and the admin user list.
type User struct {
	ID      int64  `json:"id,omitempty"`
	Fname   string `json:"fname"`
	Lname   string `json:"lname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin,omitempty"`
}

// FullName joins first and last name, falling back to "—" when both are
// empty, matching how the profile screen renders an unnamed account.
func (u User) FullName() string {
	name := strings.TrimSpace(u.Fname + " " + u.Lname)
	if name == "" {
		return "—"
	}
	return name
}

// Initial is the single-letter avatar text: first letter of the first name,
// else of the email, else "U".
func (u User) Initial() string {
	if u.Fname != "" {
		return strings.ToUpper(u.Fname[:1])
	}
	if u.Email != "" {
		return strings.ToUpper(u.Email[:1])
	}
	return "U"
}

// RoleLabel renders the admin flag the way the users table does.
func (u User) RoleLabel() string {
	if u.IsAdmin {
		return "Admin"
	}
	return "User"
}
