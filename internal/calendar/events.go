// Package calendar maps bookings onto availability-calendar events.
package calendar

import (
	"time"

	"github.com/vaberg/holidaze/internal/domain"
)

const (
	bookedTitle = "Booked"
	blockColor  = "#f25c54"
	textColor   = "#fbf7f1"
)

// Event is one blocked, non-selectable range on the availability calendar.
// The span is [Start, End): checkout day itself is free.
type Event struct {
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	AllDay    bool      `json:"allDay"`
	Display   string    `json:"display"`
	Color     string    `json:"color"`
	TextColor string    `json:"textColor"`
}

// FromBookings renders one event per booking.
func FromBookings(bookings []domain.Booking) []Event {
	events := make([]Event, 0, len(bookings))
	for _, b := range bookings {
		events = append(events, Event{
			Title:     bookedTitle,
			Start:     b.DateFrom,
			End:       b.DateTo,
			AllDay:    true,
			Display:   "block",
			Color:     blockColor,
			TextColor: textColor,
		})
	}
	return events
}
