package services

import (
	"context"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/session"
	"github.com/antab/antabcli/internal/client/views"
	"github.com/antab/antabcli/internal/common"
)

// MsgTripsSignIn is shown when the trip history is opened signed out.
const MsgTripsSignIn = "Please log in to view your booking history."

const msgLoadFailed = "Failed to load data."

// TripsService backs the trip-history screen.
type TripsService struct {
	client api.Client
	store  *session.Store
	list   *views.List[models.Booking]
}

func NewTripsService(client api.Client, store *session.Store) *TripsService {
	return &TripsService{
		client: client,
		store:  store,
		list:   views.NewList(func(b models.Booking) int64 { return b.ID }),
	}
}

// Bookings exposes the screen's collection state.
func (s *TripsService) Bookings() *views.List[models.Booking] {
	return s.list
}

// Load fetches /my-bookings. With no credential present, the screen goes
// straight to its error state without issuing any network request.
func (s *TripsService) Load(ctx context.Context) error {
	token, err := s.store.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		s.list.Fail(MsgTripsSignIn)
		return common.ErrNotSignedIn
	}

	return s.list.Load(ctx, s.client.MyBookings, func(err error) string {
		return api.MessageOr(err, msgLoadFailed)
	})
}
