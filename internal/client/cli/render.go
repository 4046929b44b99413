package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/antab/antabcli/internal/client/models"
	"github.com/antab/antabcli/internal/client/views"
)

// tableOut is where the rendered tables go. Tests can redirect it.
var tableOut io.Writer = os.Stdout

// dash substitutes the placeholder the tables show for empty cells.
func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// renderBookings prints a booking collection. The admin listing adds the
// guest columns the server only includes for /admin/bookings.
func renderBookings(list *views.List[models.Booking], admin bool) {
	if list.Status() == views.StatusFailed {
		printlnFn(list.ErrorMessage())
		return
	}

	items := list.Items()
	if len(items) == 0 {
		printlnFn("No bookings yet.")
		return
	}

	w := tabwriter.NewWriter(tableOut, 0, 4, 2, ' ', 0)
	if admin {
		fmt.Fprintln(w, "ID\tCODE\tGUEST\tROOM\tCITY\tCHECK-IN\tCHECK-OUT\tTOTAL\tSTATUS")
		for _, b := range items {
			guest := strings.TrimSpace(b.Fname + " " + b.Lname)
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
				b.ID, dash(b.BookingCode), dash(guest), dash(b.RoomName), dash(b.City),
				dash(b.CheckIn), dash(b.CheckOut), b.TotalPrice, b.StatusOrPending())
		}
	} else {
		fmt.Fprintln(w, "ID\tCODE\tROOM\tCITY\tCHECK-IN\tCHECK-OUT\tNIGHTS\tTOTAL\tSTATUS")
		for _, b := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%.2f\t%s\n",
				b.ID, dash(b.BookingCode), dash(b.RoomName), dash(b.City),
				dash(b.CheckIn), dash(b.CheckOut), b.Nights, b.TotalPrice, b.StatusOrPending())
		}
	}
	w.Flush()
}

func renderRooms(list *views.List[models.Room]) {
	if list.Status() == views.StatusFailed {
		printlnFn(list.ErrorMessage())
		return
	}

	items := list.Items()
	if len(items) == 0 {
		printlnFn("No rooms yet.")
		return
	}

	w := tabwriter.NewWriter(tableOut, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tTYPE\tCITY\tPRICE/NIGHT\tSTATUS")
	for _, r := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\n",
			r.ID, dash(r.RoomNumber), dash(r.RoomType), dash(r.City), r.PricePerNight, r.StatusLabel())
	}
	w.Flush()
}

func renderUsers(list *views.List[models.User]) {
	if list.Status() == views.StatusFailed {
		printlnFn(list.ErrorMessage())
		return
	}

	items := list.Items()
	if len(items) == 0 {
		printlnFn("No users yet.")
		return
	}

	w := tabwriter.NewWriter(tableOut, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tROLE")
	for _, u := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.ID, u.FullName(), dash(u.Email), dash(u.Phone), u.RoleLabel())
	}
	w.Flush()
}
