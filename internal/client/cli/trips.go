package cli

import (
	"context"
)

// Trips shows the booking history screen. The collection state carries its
// own error text (sign-in hint, server message or the generic fallback), so
// rendering is the same on every outcome.
func (a *App) Trips(ctx context.Context) error {
	err := a.tripsService.Load(ctx)
	if a.sessionExpired(err) {
		return err
	}

	renderBookings(a.tripsService.Bookings(), false)
	return err
}
