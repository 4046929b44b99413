package models

import "strings"

// Room statuses as offered by the room editor.
const (
	RoomStatusAvailable   = "available"
	RoomStatusUnavailable = "unavailable"
	RoomStatusMaintenance = "maintenance"
)

// Room is one row of /admin/rooms.
type Room struct {
	ID            int64   `json:"id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	City          string  `json:"city"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
}

// StatusLabel mirrors the status chip: anything that is not explicitly
// unavailable or under maintenance renders as Available.
func (r Room) StatusLabel() string {
	switch strings.ToLower(r.Status) {
	case RoomStatusUnavailable:
		return "Unavailable"
	case RoomStatusMaintenance:
		return "Maintenance"
	default:
		return "Available"
	}
}

// RoomInput is the payload for creating or editing a room. Text fields are
// trimmed before sending, the price defaults to 0 when not a number.
type RoomInput struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	City          string  `json:"city"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
}

// Normalize trims the text fields in place.
func (in *RoomInput) Normalize() {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	in.RoomType = strings.TrimSpace(in.RoomType)
	in.City = strings.TrimSpace(in.City)
}
