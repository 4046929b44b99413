package api

import (
	"context"
	"encoding/json"

	"github.com/antab/antabcli/internal/client/models"
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Fname    string `json:"fname"`
	Lname    string `json:"lname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileInput is the payload for saving the profile. Fields are trimmed
// before sending.
type ProfileInput struct {
	Fname string `json:"fname"`
	Lname string `json:"lname"`
	Phone string `json:"phone"`
}

// Client is the surface the services and the CLI program against. The
// production implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Login(ctx context.Context, email, password string) (string, json.RawMessage, error)
	Register(ctx context.Context, in RegisterInput) error
	Ping(ctx context.Context) error

	Me(ctx context.Context) (json.RawMessage, error)
	UpdateMe(ctx context.Context, in ProfileInput) (json.RawMessage, error)

	MyBookings(ctx context.Context) ([]models.Booking, error)

	AdminBookings(ctx context.Context) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error

	AdminRooms(ctx context.Context) ([]models.Room, error)
	CreateRoom(ctx context.Context, in models.RoomInput) error
	UpdateRoom(ctx context.Context, id int64, in models.RoomInput) error
	DeleteRoom(ctx context.Context, id int64) error

	AdminUsers(ctx context.Context) ([]models.User, error)
}
