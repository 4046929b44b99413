package services

import (
	"context"
	"encoding/json"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
)

// fakeClient is a scriptable api.Client shared by the service tests.
type fakeClient struct {
	// Login
	loginToken string
	loginUser  json.RawMessage
	loginErr   error
	lastLogin  [2]string

	registerErr error
	lastReg     api.RegisterInput

	pingErr error

	meUser json.RawMessage
	meErr  error

	updateMeUser json.RawMessage
	updateMeErr  error
	lastProfile  api.ProfileInput

	myBookings    []models.Booking
	myBookingsErr error
	myBookingsN   int

	adminBookings    []models.Booking
	adminBookingsErr error
	adminBookingsN   int

	statusErr  error
	lastStatus struct {
		id     int64
		status string
	}

	adminRooms    []models.Room
	adminRoomsErr error
	adminRoomsN   int

	createRoomErr error
	updateRoomErr error
	deleteRoomErr error
	lastRoomID    int64
	lastRoomInput models.RoomInput

	adminUsers    []models.User
	adminUsersErr error
	adminUsersN   int
}

func (f *fakeClient) Login(_ context.Context, email, password string) (string, json.RawMessage, error) {
	f.lastLogin = [2]string{email, password}
	return f.loginToken, f.loginUser, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, in api.RegisterInput) error {
	f.lastReg = in
	return f.registerErr
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Me(context.Context) (json.RawMessage, error) {
	return f.meUser, f.meErr
}

func (f *fakeClient) UpdateMe(_ context.Context, in api.ProfileInput) (json.RawMessage, error) {
	f.lastProfile = in
	return f.updateMeUser, f.updateMeErr
}

func (f *fakeClient) MyBookings(context.Context) ([]models.Booking, error) {
	f.myBookingsN++
	return f.myBookings, f.myBookingsErr
}

func (f *fakeClient) AdminBookings(context.Context) ([]models.Booking, error) {
	f.adminBookingsN++
	return f.adminBookings, f.adminBookingsErr
}

func (f *fakeClient) UpdateBookingStatus(_ context.Context, id int64, status string) error {
	f.lastStatus.id, f.lastStatus.status = id, status
	return f.statusErr
}

func (f *fakeClient) AdminRooms(context.Context) ([]models.Room, error) {
	f.adminRoomsN++
	return f.adminRooms, f.adminRoomsErr
}

func (f *fakeClient) CreateRoom(_ context.Context, in models.RoomInput) error {
	f.lastRoomID, f.lastRoomInput = 0, in
	return f.createRoomErr
}

func (f *fakeClient) UpdateRoom(_ context.Context, id int64, in models.RoomInput) error {
	f.lastRoomID, f.lastRoomInput = id, in
	return f.updateRoomErr
}

func (f *fakeClient) DeleteRoom(_ context.Context, id int64) error {
	f.lastRoomID = id
	return f.deleteRoomErr
}

func (f *fakeClient) AdminUsers(context.Context) ([]models.User, error) {
	f.adminUsersN++
	return f.adminUsers, f.adminUsersErr
}
