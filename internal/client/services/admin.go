package services

import (
	"context"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/session"
	"github.com/antab/antabcli/internal/client/views"
	"github.com/antab/antabcli/internal/common"
)

// Signed-out messages of the admin screens.
const (
	MsgAdminBookingsSignIn = "Please sign in with an admin account."
	MsgAdminRoomsSignIn    = "Please log in as admin."
	MsgAdminUsersSignIn    = "Please sign in as admin first."
)

const msgUsersLoadFailed = "db error"

// AdminService backs the three admin screens. Each screen owns its own
// collection state; reconciliation after mutations follows two rules:
// a successful status change patches the one affected row in place, while
// create/edit/delete trigger a full reload (row count or identifiers may
// have changed). Failed mutations leave the collection untouched; the
// caller surfaces them as a transient alert.
type AdminService struct {
	client api.Client
	store  *session.Store

	bookings *views.List[models.Booking]
	rooms    *views.List[models.Room]
	users    *views.List[models.User]
}

func NewAdminService(client api.Client, store *session.Store) *AdminService {
	return &AdminService{
		client:   client,
		store:    store,
		bookings: views.NewList(func(b models.Booking) int64 { return b.ID }),
		rooms:    views.NewList(func(r models.Room) int64 { return r.ID }),
		users:    views.NewList(func(u models.User) int64 { return u.ID }),
	}
}

func (s *AdminService) Bookings() *views.List[models.Booking] { return s.bookings }
func (s *AdminService) Rooms() *views.List[models.Room]       { return s.rooms }
func (s *AdminService) Users() *views.List[models.User]       { return s.users }

// signedIn reports whether any scope holds a credential. Admin screens
// short-circuit to their sign-in message without touching the network.
func (s *AdminService) signedIn(ctx context.Context) (bool, error) {
	token, err := s.store.Token(ctx)
	if err != nil {
		return false, err
	}
	return token != "", nil
}

func (s *AdminService) LoadBookings(ctx context.Context) error {
	if ok, err := s.signedIn(ctx); err != nil {
		return err
	} else if !ok {
		s.bookings.Fail(MsgAdminBookingsSignIn)
		return common.ErrNotSignedIn
	}

	return s.bookings.Load(ctx, s.client.AdminBookings, func(err error) string {
		return api.MessageOr(err, msgLoadFailed)
	})
}

// ChangeBookingStatus performs the single-field mutation of the bookings
// screen. On success only the matching row's status changes, with no
// refetch; on failure the collection stays exactly as it was.
func (s *AdminService) ChangeBookingStatus(ctx context.Context, id int64, status string) error {
	if err := s.client.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}

	s.bookings.Patch(id, func(b *models.Booking) { b.Status = status })
	return nil
}

func (s *AdminService) LoadRooms(ctx context.Context) error {
	if ok, err := s.signedIn(ctx); err != nil {
		return err
	} else if !ok {
		s.rooms.Fail(MsgAdminRoomsSignIn)
		return common.ErrNotSignedIn
	}

	return s.rooms.Load(ctx, s.client.AdminRooms, func(err error) string {
		return api.MessageOr(err, msgLoadFailed)
	})
}

// SaveRoom creates (id == 0) or edits a room, then reloads the whole
// collection: after a create or edit the identifier set may have changed,
// so a wholesale refetch is the simplest correct reconciliation.
func (s *AdminService) SaveRoom(ctx context.Context, id int64, in models.RoomInput) error {
	var err error
	if id == 0 {
		err = s.client.CreateRoom(ctx, in)
	} else {
		err = s.client.UpdateRoom(ctx, id, in)
	}
	if err != nil {
		return err
	}

	return s.LoadRooms(ctx)
}

// DeleteRoom removes a room and reloads the collection.
func (s *AdminService) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.client.DeleteRoom(ctx, id); err != nil {
		return err
	}

	return s.LoadRooms(ctx)
}

func (s *AdminService) LoadUsers(ctx context.Context) error {
	if ok, err := s.signedIn(ctx); err != nil {
		return err
	} else if !ok {
		s.users.Fail(MsgAdminUsersSignIn)
		return common.ErrNotSignedIn
	}

	return s.users.Load(ctx, s.client.AdminUsers, func(err error) string {
		return api.MessageOr(err, msgUsersLoadFailed)
	})
}
