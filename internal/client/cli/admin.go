package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/views"
)

// Bookings shows the admin booking listing.
func (a *App) Bookings(ctx context.Context) error {
	err := a.adminService.LoadBookings(ctx)
	if a.sessionExpired(err) {
		return err
	}

	renderBookings(a.adminService.Bookings(), true)
	return err
}

// SetStatus changes one booking's status. On success only the affected row
// is rewritten; the listing is not refetched.
func (a *App) SetStatus(ctx context.Context) error {
	id, err := a.promptID("Enter booking id")
	if err != nil {
		return err
	}

	status, err := getSimpleText(a.reader, "Enter new status (pending/paid/confirmed/cancelled)", os.Stdout)
	if err != nil {
		return err
	}
	if !models.ValidBookingStatus(status) {
		printlnFn("Unknown status:", status)
		return nil
	}

	err = a.adminService.ChangeBookingStatus(ctx, id, status)
	if a.sessionExpired(err) {
		return err
	}
	if err != nil {
		log.Printf("Status change unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Status updated.")
	renderBookings(a.adminService.Bookings(), true)
	return nil
}

// Rooms shows the admin room listing.
func (a *App) Rooms(ctx context.Context) error {
	err := a.adminService.LoadRooms(ctx)
	if a.sessionExpired(err) {
		return err
	}

	renderRooms(a.adminService.Rooms())
	return err
}

// AddRoom collects the room fields and creates a room. The listing is
// refetched wholesale afterwards.
func (a *App) AddRoom(ctx context.Context) error {
	in, err := a.promptRoom(models.RoomInput{})
	if err != nil {
		return err
	}
	return a.saveRoom(ctx, 0, in)
}

// EditRoom edits an existing room, prefilled with its current fields.
func (a *App) EditRoom(ctx context.Context) error {
	id, err := a.promptID("Enter room id")
	if err != nil {
		return err
	}

	seed := models.RoomInput{}
	for _, r := range a.adminService.Rooms().Items() {
		if r.ID == id {
			seed = models.RoomInput{RoomNumber: r.RoomNumber, RoomType: r.RoomType, City: r.City, PricePerNight: r.PricePerNight, Status: r.Status}
			break
		}
	}

	in, err := a.promptRoom(seed)
	if err != nil {
		return err
	}
	return a.saveRoom(ctx, id, in)
}

func (a *App) saveRoom(ctx context.Context, id int64, in models.RoomInput) error {
	err := a.adminService.SaveRoom(ctx, id, in)
	if a.sessionExpired(err) {
		return err
	}
	if err != nil {
		log.Printf("Room save unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Saved.")
	renderRooms(a.adminService.Rooms())
	return nil
}

// DelRoom deletes a room after confirmation and refetches the listing.
func (a *App) DelRoom(ctx context.Context) error {
	id, err := a.promptID("Enter room id to delete")
	if err != nil {
		return err
	}

	sure, err := getYesNo(a.reader, fmt.Sprintf("Delete room %d?", id), os.Stdout)
	if err != nil {
		return err
	}
	if !sure {
		return nil
	}

	err = a.adminService.DeleteRoom(ctx, id)
	if a.sessionExpired(err) {
		return err
	}
	if err != nil {
		log.Printf("Room delete unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Deleted.")
	renderRooms(a.adminService.Rooms())
	return nil
}

// Users shows the admin account listing.
func (a *App) Users(ctx context.Context) error {
	err := a.adminService.LoadUsers(ctx)
	if a.sessionExpired(err) {
		return err
	}

	renderUsers(a.adminService.Users())
	return err
}

// Reload refetches every admin collection that was already opened. Screens
// never visited stay untouched.
func (a *App) Reload(ctx context.Context) error {
	var firstErr error

	reload := func(loaded bool, load func(context.Context) error) {
		if !loaded {
			return
		}
		if err := load(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	reload(a.adminService.Bookings().Status() != views.StatusLoading, a.adminService.LoadBookings)
	reload(a.adminService.Rooms().Status() != views.StatusLoading, a.adminService.LoadRooms)
	reload(a.adminService.Users().Status() != views.StatusLoading, a.adminService.LoadUsers)

	if a.sessionExpired(firstErr) {
		return firstErr
	}
	if firstErr != nil {
		log.Printf("error: %v", firstErr)
		return firstErr
	}

	fmt.Println("Reloaded.")
	return nil
}

// promptID reads a positive numeric identifier.
func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		printlnFn("Invalid id:", raw)
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// promptRoom collects the room editor fields, prefilled from seed. An empty
// answer keeps the seed value; the price falls back to the seed when it
// does not parse.
func (a *App) promptRoom(seed models.RoomInput) (models.RoomInput, error) {
	in := seed

	number, err := getSimpleText(a.reader, fmt.Sprintf("Room number [%s]", seed.RoomNumber), os.Stdout)
	if err != nil {
		return in, err
	}
	if number != "" {
		in.RoomNumber = number
	}

	roomType, err := getSimpleText(a.reader, fmt.Sprintf("Room type [%s]", seed.RoomType), os.Stdout)
	if err != nil {
		return in, err
	}
	if roomType != "" {
		in.RoomType = roomType
	}

	city, err := getSimpleText(a.reader, fmt.Sprintf("City [%s]", seed.City), os.Stdout)
	if err != nil {
		return in, err
	}
	if city != "" {
		in.City = city
	}

	price, err := getSimpleText(a.reader, fmt.Sprintf("Price per night [%.2f]", seed.PricePerNight), os.Stdout)
	if err != nil {
		return in, err
	}
	if price != "" {
		if p, perr := strconv.ParseFloat(price, 64); perr == nil {
			in.PricePerNight = p
		}
	}

	status, err := getSimpleText(a.reader, fmt.Sprintf("Status (available/unavailable/maintenance) [%s]", seed.Status), os.Stdout)
	if err != nil {
		return in, err
	}
	if status != "" {
		in.Status = status
	}

	in.Normalize()
	return in, nil
}
