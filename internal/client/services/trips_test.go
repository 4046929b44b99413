package services

import (
	"context"
	"testing"

	"github.com/antab/antabcli/internal/client/api"
	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/views"
	"github.com/antab/antabcli/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripsLoad_SignedOutSkipsNetwork(t *testing.T) {
	store := memStore(t)
	client := &fakeClient{}
	svc := NewTripsService(client, store)

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, common.ErrNotSignedIn)

	assert.Equal(t, views.StatusFailed, svc.Bookings().Status())
	assert.Equal(t, MsgTripsSignIn, svc.Bookings().ErrorMessage())
	assert.Zero(t, client.myBookingsN, "no request is issued without a credential")
}

func TestTripsLoad_Success(t *testing.T) {
	store := memStore(t)
	seedSession(t, store, "tok", "")

	client := &fakeClient{myBookings: []models.Booking{
		{ID: 2, Status: models.BookingStatusPaid},
		{ID: 1},
	}}
	svc := NewTripsService(client, store)

	require.NoError(t, svc.Load(context.Background()))

	list := svc.Bookings()
	assert.Equal(t, views.StatusReady, list.Status())
	require.Len(t, list.Items(), 2)
	assert.Equal(t, int64(2), list.Items()[0].ID, "server order is kept")
	assert.Equal(t, 1, client.myBookingsN)
}

func TestTripsLoad_ServerMessageShown(t *testing.T) {
	store := memStore(t)
	seedSession(t, store, "tok", "")

	client := &fakeClient{myBookingsErr: &api.Error{Status: 403, Message: "forbidden"}}
	svc := NewTripsService(client, store)

	require.Error(t, svc.Load(context.Background()))
	assert.Equal(t, views.StatusFailed, svc.Bookings().Status())
	assert.Equal(t, "forbidden", svc.Bookings().ErrorMessage())
}

func TestTripsLoad_NetworkErrorMessage(t *testing.T) {
	store := memStore(t)
	seedSession(t, store, "tok", "")

	client := &fakeClient{myBookingsErr: common.ErrNetwork}
	svc := NewTripsService(client, store)

	require.ErrorIs(t, svc.Load(context.Background()), common.ErrNetwork)
	assert.Equal(t, "Network error", svc.Bookings().ErrorMessage())
}
