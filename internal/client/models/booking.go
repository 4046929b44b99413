package models

// Booking statuses as used by the admin status selector.
const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is one row of /my-bookings or /admin/bookings. Timestamps are kept
// as the server's strings; rendering treats empty values as "-".
type Booking struct {
	ID          int64  `json:"id"`
	BookingCode string `json:"booking_code"`
	RoomName    string `json:"room_name"`
	RoomType    string `json:"room_type"`
	City        string `json:"city"`

	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`

	Rooms    int `json:"rooms"`
	Nights   int `json:"nights"`
	Adults   int `json:"adults"`
	Children int `json:"children"`

	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`

	Status string `json:"status"`

	// Present only in the admin listing.
	Fname     string `json:"fname,omitempty"`
	Lname     string `json:"lname,omitempty"`
	UserEmail string `json:"user_email,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
}

// StatusOrPending substitutes the default the status chip shows for rows
// without a status.
func (b Booking) StatusOrPending() string {
	if b.Status == "" {
		return BookingStatusPending
	}
	return b.Status
}

// ValidBookingStatus reports whether s is one of the selectable statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusPaid, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
